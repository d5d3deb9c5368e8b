package domain

// TimeOfDay is a coarse daypart used to filter the catalog.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayForHour maps a clock hour (0-23) to its daypart.
func TimeOfDayForHour(hour int) TimeOfDay {
	if hour < 12 {
		return Morning
	}
	if hour < 18 {
		return Afternoon
	}
	return Evening
}

// SpotRole is the narrative slot a place can fill in a tour.
type SpotRole string

const (
	RoleAnchor     SpotRole = "anchor"
	RoleHighlight  SpotRole = "highlight"
	RoleSupporting SpotRole = "supporting"
	RoleMicro      SpotRole = "micro"
)

// Place is a single recommendable point of interest. Places are immutable:
// they come from the curated catalog or from a live fetch, and the engine
// never modifies one.
type Place struct {
	ID               string
	Name             string
	Category         string
	Description      string
	Coordinates      Coordinates
	Role             SpotRole
	DurationMinutes  int
	GenerationWeight float64
	TimesOfDay       []TimeOfDay
}

// Weight returns the place's generation weight for weighted selection.
// Missing, zero, or negative weights count as 1.
func (p Place) Weight() float64 {
	if p.GenerationWeight <= 0 {
		return 1
	}
	return p.GenerationWeight
}

// ValidAt reports whether the place applies to the given daypart.
func (p Place) ValidAt(t TimeOfDay) bool {
	for _, tod := range p.TimesOfDay {
		if tod == t {
			return true
		}
	}
	return false
}
