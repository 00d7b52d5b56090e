package apiv1

import "time"

type Review struct {
	ID         uint64    `json:"id"`
	MovieID    uint64    `json:"movieId"`
	AuthorID   *uint64   `json:"authorId,omitempty"`
	AuthorName *string   `json:"authorName,omitempty"`
	Score      float64   `json:"score"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateReviewRequest struct {
	MovieID    uint64  `json:"movieId"`
	Score      float64 `json:"score"`
	Text       string  `json:"text"`
	AuthorName *string `json:"authorName,omitempty"`
}

type CreateReviewResponse struct {
	Review      *Review `json:"review"`
	MovieRating float64 `json:"movieRating"`
}

type UpdateReviewRequest struct {
	ReviewID uint64   `json:"reviewId"`
	Score    *float64 `json:"score,omitempty"`
	Text     *string  `json:"text,omitempty"`
}

type UpdateReviewResponse struct {
	Review      *Review `json:"review"`
	MovieRating float64 `json:"movieRating"`
}

type DeleteReviewRequest struct {
	ReviewID uint64 `json:"reviewId"`
}

type DeleteReviewResponse struct {
	Deleted bool `json:"deleted"`
}

type GetReviewRequest struct {
	ReviewID uint64 `json:"reviewId"`
}

type GetReviewResponse struct {
	Review *Review `json:"review"`
}

type ListMovieReviewsRequest struct {
	MovieID uint64 `json:"movieId"`
	Skip    int32  `json:"skip"`
	Limit   int32  `json:"limit"`
}

type ListMovieReviewsResponse struct {
	Reviews []*Review `json:"reviews"`
}

type ListAuthorReviewsRequest struct {
	// AuthorID defaults to the calling user.
	AuthorID *uint64 `json:"authorId,omitempty"`
	Skip     int32   `json:"skip"`
	Limit    int32   `json:"limit"`
}

type ListAuthorReviewsResponse struct {
	Reviews []*Review `json:"reviews"`
}
