package apiv1

import "time"

type Pick struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MoviePick struct {
	MovieID uint64    `json:"movieId"`
	Slug    string    `json:"slug"`
	AddedAt time.Time `json:"addedAt"`
}

type ListPicksRequest struct{}

type ListPicksResponse struct {
	Picks []*Pick `json:"picks"`
}

type GetPickRequest struct {
	Slug string `json:"slug"`
}

type GetPickResponse struct {
	Pick *Pick `json:"pick"`
}

type CreatePickRequest struct {
	Name        string  `json:"name"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreatePickResponse struct {
	Pick *Pick `json:"pick"`
}

type UpdatePickRequest struct {
	Slug        string  `json:"slug"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdatePickResponse struct {
	Pick *Pick `json:"pick"`
}

type DeletePickRequest struct {
	Slug string `json:"slug"`
}

type DeletePickResponse struct {
	Deleted bool `json:"deleted"`
}

type AttachPickRequest struct {
	MovieID uint64 `json:"movieId"`
	Slug    string `json:"slug"`
}

type AttachPickResponse struct {
	Membership *MoviePick `json:"membership"`
}

type DetachPickRequest struct {
	MovieID uint64 `json:"movieId"`
	Slug    string `json:"slug"`
}

type DetachPickResponse struct {
	Removed bool `json:"removed"`
}

type ListPicksForMovieRequest struct {
	MovieID uint64 `json:"movieId"`
}

type ListPicksForMovieResponse struct {
	Picks []*Pick `json:"picks"`
}

type ListMoviesForPickRequest struct {
	Slug  string `json:"slug"`
	Skip  int32  `json:"skip"`
	Limit int32  `json:"limit"`
}

type ListMoviesForPickResponse struct {
	Movies []*Movie `json:"movies"`
}
