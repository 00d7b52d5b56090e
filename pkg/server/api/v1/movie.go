package apiv1

import "time"

type Movie struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Year      int32     `json:"year"`
	Genre     string    `json:"genre"`
	Rating    float64   `json:"rating"`
	PosterURL *string   `json:"posterUrl,omitempty"`
	Overview  *string   `json:"overview,omitempty"`
	CreatedBy *uint64   `json:"createdBy,omitempty"`
	Picks     []string  `json:"picks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MovieStats struct {
	MovieID       uint64  `json:"movieId"`
	Rating        float64 `json:"rating"`
	Views         int64   `json:"views"`
	ReviewCount   int64   `json:"reviewCount"`
	PickCount     int64   `json:"pickCount"`
	FavoriteCount int64   `json:"favoriteCount"`
}

type MovieMetadata struct {
	Source         string   `json:"source"`
	ExternalID     string   `json:"externalId"`
	Title          string   `json:"title"`
	Year           int32    `json:"year"`
	Genre          string   `json:"genre"`
	PosterURL      *string  `json:"posterUrl,omitempty"`
	Overview       *string  `json:"overview,omitempty"`
	ExternalRating *float64 `json:"externalRating,omitempty"`
}

type ListMoviesRequest struct {
	Genre     *string  `json:"genre,omitempty"`
	Year      *int32   `json:"year,omitempty"`
	Search    *string  `json:"search,omitempty"`
	RatingMin *float64 `json:"ratingMin,omitempty"`
	RatingMax *float64 `json:"ratingMax,omitempty"`
	Pick      *string  `json:"pick,omitempty"`
	Skip      int32    `json:"skip"`
	Limit     int32    `json:"limit"`
}

type ListMoviesResponse struct {
	Movies []*Movie `json:"movies"`
	Total  int64    `json:"total"`
	Skip   int32    `json:"skip"`
	Limit  int32    `json:"limit"`
}

type GetMovieRequest struct {
	MovieID uint64 `json:"movieId"`
}

type GetMovieResponse struct {
	Movie *Movie `json:"movie"`
}

type SearchMoviesRequest struct {
	Query string `json:"query"`
	Skip  int32  `json:"skip"`
	Limit int32  `json:"limit"`
}

type SearchMoviesResponse struct {
	Movies []*Movie `json:"movies"`
}

type CreateMovieRequest struct {
	Title     string   `json:"title"`
	Year      int32    `json:"year"`
	Genre     string   `json:"genre"`
	Rating    *float64 `json:"rating,omitempty"`
	PosterURL *string  `json:"posterUrl,omitempty"`
	Overview  *string  `json:"overview,omitempty"`
}

type CreateMovieResponse struct {
	Movie *Movie `json:"movie"`
}

type UpdateMovieRequest struct {
	MovieID   uint64  `json:"movieId"`
	Title     *string `json:"title,omitempty"`
	Year      *int32  `json:"year,omitempty"`
	Genre     *string `json:"genre,omitempty"`
	PosterURL *string `json:"posterUrl,omitempty"`
	Overview  *string `json:"overview,omitempty"`
}

type UpdateMovieResponse struct {
	Movie *Movie `json:"movie"`
}

type DeleteMovieRequest struct {
	MovieID uint64 `json:"movieId"`
}

type DeleteMovieResponse struct {
	Deleted bool `json:"deleted"`
}

type GetMovieStatsRequest struct {
	MovieID uint64 `json:"movieId"`
}

type GetMovieStatsResponse struct {
	Stats *MovieStats `json:"stats"`
}

type IncrementMovieViewsRequest struct {
	MovieID uint64 `json:"movieId"`
}

type IncrementMovieViewsResponse struct {
	Views int64 `json:"views"`
}

type FindMovieMetadataRequest struct {
	Query string `json:"query"`
}

type FindMovieMetadataResponse struct {
	Candidates []*MovieMetadata `json:"candidates"`
}

type ImportMovie struct {
	Title     string   `json:"title"`
	Year      int32    `json:"year"`
	Genre     string   `json:"genre"`
	PosterURL *string  `json:"posterUrl,omitempty"`
	Overview  *string  `json:"overview,omitempty"`
	Picks     []string `json:"picks,omitempty"`
}

type ImportReport struct {
	Total   int32    `json:"total"`
	Loaded  int32    `json:"loaded"`
	Skipped int32    `json:"skipped"`
	Errors  []string `json:"errors"`
}

type ImportMoviesRequest struct {
	Movies []*ImportMovie `json:"movies"`
}

type ImportMoviesResponse struct {
	Report *ImportReport `json:"report"`
}
