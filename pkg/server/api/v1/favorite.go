package apiv1

import "time"

type Favorite struct {
	MovieID   uint64    `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddFavoriteRequest struct {
	MovieID uint64 `json:"movieId"`
}

type AddFavoriteResponse struct {
	Favorite *Favorite `json:"favorite"`
}

type RemoveFavoriteRequest struct {
	MovieID uint64 `json:"movieId"`
}

type RemoveFavoriteResponse struct {
	Removed bool `json:"removed"`
}

type ListFavoritesRequest struct {
	Skip  int32 `json:"skip"`
	Limit int32 `json:"limit"`
}

type ListFavoritesResponse struct {
	Movies []*Movie `json:"movies"`
}

type IsFavoriteRequest struct {
	MovieID uint64 `json:"movieId"`
}

type IsFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}
