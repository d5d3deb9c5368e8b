package domain

// CuratedTour is a hand-built, pre-packaged tour from the static catalog.
// Curated tours are served as-is; the curation engine does not touch them.
type CuratedTour struct {
	Title      string
	Duration   string
	Difficulty string
	Stops      []CuratedStop
}

// CuratedStop is one stop of a curated tour.
type CuratedStop struct {
	Name        string
	Category    string
	Coordinates Coordinates
	Duration    string
	Description string
}
