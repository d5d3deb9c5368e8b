package domain

// Tour is the ordered, duration-budgeted sequence of chosen places.
// It is created once per generation call and afterwards only mutated by the
// stop editor (remove, replace), never rebuilt wholesale.
type Tour struct {
	Stops                []Place
	TotalDurationMinutes int
}

// Add appends a stop and accounts for its estimated visit duration.
func (t *Tour) Add(p Place) {
	t.Stops = append(t.Stops, p)
	t.TotalDurationMinutes += p.DurationMinutes
}

// Contains reports whether a place with the given ID is already in the tour.
func (t *Tour) Contains(id string) bool {
	for _, s := range t.Stops {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of stops.
func (t *Tour) Len() int { return len(t.Stops) }
