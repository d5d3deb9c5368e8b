package domain

import "errors"

// Expected, user-visible outcomes of the curation engine. Handlers translate
// these into localized payload messages; they are never fatal.
var (
	// Fewer than three usable places within any supported radius.
	ErrInsufficientCandidates = errors.New("insufficient candidates")

	// The stop editor's replacement pool is empty; the tour is left unchanged.
	ErrNoReplacement = errors.New("no replacement available")

	// The external POI or geocoding source returned a non-success response
	// or a malformed payload.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// No coordinates could be resolved for the requested start point.
	ErrInvalidStartPoint = errors.New("invalid start point")
)
