package domain

// Recognized moods. Each mood maps to a fixed category allow-list used when
// places come from a live POI source instead of the curated catalog.
const (
	MoodGenuss    = "Genuss"
	MoodNatur     = "Natur"
	MoodKultur    = "Kultur"
	MoodEntspannt = "Entspannt"
)

var moodCategories = map[string][]string{
	MoodGenuss:    {"restaurant", "bar", "cafe", "pub", "biergarten"},
	MoodNatur:     {"park", "garden", "viewpoint"},
	MoodKultur:    {"museum", "theatre", "gallery", "attraction", "artwork"},
	MoodEntspannt: {"cafe", "park", "garden", "viewpoint", "ice_cream"},
}

// CategoriesForMood returns the category allow-list for a mood.
// An unrecognized mood yields an empty list, which degrades to "no candidates"
// downstream rather than an error.
func CategoriesForMood(mood string) []string {
	return moodCategories[mood]
}
