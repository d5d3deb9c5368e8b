package dto

// GenerateTourRequest is the inbound body for role-based tour generation.
// lat/lon are pointers so a missing start point can be told apart from (0,0).
type GenerateTourRequest struct {
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Mood      string   `json:"mood"`
	TimeOfDay string   `json:"time_of_day"`
	RadiusKm  float64  `json:"radius_km"`
}

// DiscoverRequest is the inbound body for the live-fetch tour variant.
type DiscoverRequest struct {
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
	Mood string   `json:"mood"`
}

// TourResponse carries generated stops plus walking totals from the start
// point (walking pace over haversine legs plus a fixed stay per stop).
type TourResponse struct {
	Stops                []PlaceResponse `json:"stops"`
	TotalDurationMinutes int             `json:"total_duration_minutes,omitempty"`
	TotalDistanceKm      float64         `json:"total_distance_km"`
	TotalWalkMinutes     int             `json:"total_walk_minutes"`
}

// RemoveStopRequest deletes one stop from a previously generated tour.
type RemoveStopRequest struct {
	Stops []PlaceResponse `json:"stops"`
	Index int             `json:"index"`
}

// ReplaceStopRequest substitutes one stop, recomputing the candidate set
// around the original start point.
type ReplaceStopRequest struct {
	Lat       *float64        `json:"lat"`
	Lon       *float64        `json:"lon"`
	TimeOfDay string          `json:"time_of_day"`
	Stops     []PlaceResponse `json:"stops"`
	Index     int             `json:"index"`
}

// EditResponse returns the edited tour.
type EditResponse struct {
	Stops                []PlaceResponse `json:"stops"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
}

type GeocodeRequest struct {
	Query string `json:"query"`
}

type GeocodeResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CuratedStopResponse struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}

type CuratedTourResponse struct {
	Title      string                `json:"title"`
	Duration   string                `json:"duration"`
	Difficulty string                `json:"difficulty"`
	Stops      []CuratedStopResponse `json:"stops"`
}

type ListCuratedToursResponse struct {
	Tours []CuratedTourResponse `json:"tours"`
}
