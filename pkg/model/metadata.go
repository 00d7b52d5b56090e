package model

// MovieMetadata is a candidate catalog entry found by an external integration. It is never stored
// automatically.
type MovieMetadata struct {
	Source         string
	ExternalID     string
	Title          string
	Year           int
	Genre          string
	PosterURL      *string
	Overview       *string
	ExternalRating *float64
}
