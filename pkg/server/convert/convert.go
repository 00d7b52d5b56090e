package convert

import (
	"go.openly.dev/pointy"

	"droscher.com/MovieCatalog/pkg/model"
	api "droscher.com/MovieCatalog/pkg/server/api/v1"
)

func MoviesFromModel(movies []*model.Movie) []*api.Movie {
	apiMovies := make([]*api.Movie, 0, len(movies))

	for _, movie := range movies {
		apiMovies = append(apiMovies, MovieFromModel(movie))
	}

	return apiMovies
}

func MovieFromModel(movie *model.Movie) *api.Movie {
	apiMovie := api.Movie{
		ID:        uint64(movie.ID),
		Title:     movie.Title,
		Year:      int32(movie.Year), //nolint:gosec // release years fit
		Genre:     movie.Genre,
		Rating:    movie.Rating,
		PosterURL: movie.PosterURL,
		Overview:  movie.Overview,
		Picks:     movie.PickSlugs(),
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}

	if movie.CreatedBy != nil {
		apiMovie.CreatedBy = pointy.Uint64(uint64(*movie.CreatedBy))
	}

	return &apiMovie
}

func StatsFromModel(stats *model.MovieStats) *api.MovieStats {
	return &api.MovieStats{
		MovieID:       uint64(stats.MovieID),
		Rating:        stats.Rating,
		Views:         stats.Views,
		ReviewCount:   stats.ReviewCount,
		PickCount:     stats.PickCount,
		FavoriteCount: stats.FavoriteCount,
	}
}

func MetadataFromModel(candidates []*model.MovieMetadata) []*api.MovieMetadata {
	apiCandidates := make([]*api.MovieMetadata, 0, len(candidates))

	for _, candidate := range candidates {
		apiCandidates = append(apiCandidates, &api.MovieMetadata{
			Source:         candidate.Source,
			ExternalID:     candidate.ExternalID,
			Title:          candidate.Title,
			Year:           int32(candidate.Year), //nolint:gosec // release years fit
			Genre:          candidate.Genre,
			PosterURL:      candidate.PosterURL,
			Overview:       candidate.Overview,
			ExternalRating: candidate.ExternalRating,
		})
	}

	return apiCandidates
}

func PicksFromModel(picks []*model.Pick) []*api.Pick {
	apiPicks := make([]*api.Pick, 0, len(picks))

	for _, pick := range picks {
		apiPicks = append(apiPicks, PickFromModel(pick))
	}

	return apiPicks
}

func PickFromModel(pick *model.Pick) *api.Pick {
	return &api.Pick{
		Slug:        pick.Slug,
		Name:        pick.Name,
		Description: pick.Description,
		CreatedAt:   pick.CreatedAt,
	}
}

func MoviePickFromModel(moviePick *model.MoviePick) *api.MoviePick {
	membership := api.MoviePick{
		MovieID: uint64(moviePick.MovieID),
		AddedAt: moviePick.CreatedAt,
	}

	if moviePick.Pick != nil {
		membership.Slug = moviePick.Pick.Slug
	}

	return &membership
}

func ReviewsFromModel(reviews []*model.Review) []*api.Review {
	apiReviews := make([]*api.Review, 0, len(reviews))

	for _, review := range reviews {
		apiReviews = append(apiReviews, ReviewFromModel(review))
	}

	return apiReviews
}

func ReviewFromModel(review *model.Review) *api.Review {
	apiReview := api.Review{
		ID:         uint64(review.ID),
		MovieID:    uint64(review.MovieID),
		AuthorName: review.AuthorName,
		Score:      review.Score,
		Text:       review.Text,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if review.AuthorID != nil {
		apiReview.AuthorID = pointy.Uint64(uint64(*review.AuthorID))
	}

	return &apiReview
}

func FavoriteFromModel(favorite *model.Favorite) *api.Favorite {
	return &api.Favorite{MovieID: uint64(favorite.MovieID), CreatedAt: favorite.CreatedAt}
}

func UserFromModel(user *model.User) *api.User {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	return &api.User{
		ID:          user.UUID.String(),
		UserName:    user.Username,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		Roles:       roles,
	}
}

func RolesFromModel(roles []*model.Role) []*api.Role {
	apiRoles := make([]*api.Role, 0, len(roles))
	for _, role := range roles {
		apiRoles = append(apiRoles, RoleFromModel(role))
	}

	return apiRoles
}

func RoleFromModel(role *model.Role) *api.Role {
	return &api.Role{Name: role.Name, Description: role.Description}
}

// Page converts wire pagination; clamping is left to the catalog.
func Page(skip int32, limit int32) model.Page {
	return model.Page{Skip: int(skip), Limit: int(limit)}
}

// OptionalInt widens an optional wire integer.
func OptionalInt(value *int32) *int {
	if value == nil {
		return nil
	}

	return pointy.Int(int(*value))
}

func OptionalString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
