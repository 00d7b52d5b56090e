package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"droscher.com/MovieCatalog/pkg/model"
)

func parse(t *testing.T, value any) *schema.Schema {
	t.Helper()

	parsed, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return parsed
}

func TestMovieDeleteCascades(t *testing.T) {
	tests := []struct {
		name     string
		model    any
		relation string
		table    string
	}{
		{name: "movie picks", model: &model.Movie{}, relation: "MoviePicks", table: "movie_picks"},
		{name: "pick membership", model: &model.MoviePick{}, relation: "Pick", table: "movie_picks"},
		{name: "reviews", model: &model.Review{}, relation: "Movie", table: "reviews"},
		{name: "favorites", model: &model.Favorite{}, relation: "Movie", table: "favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relationship, found := parse(t, tt.model).Relationships.Relations[tt.relation]
			require.True(t, found)

			constraint := relationship.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.table, constraint.Schema.Table)
			assert.Equal(t, "CASCADE", constraint.OnDelete)
			assert.Equal(t, "CASCADE", constraint.OnUpdate)
		})
	}
}

func TestMoviePickSlugs(t *testing.T) {
	movie := model.Movie{MoviePicks: []model.MoviePick{
		{Pick: &model.Pick{Slug: "space-horror"}},
		{Pick: nil},
		{Pick: &model.Pick{Slug: "classics"}},
		{Pick: &model.Pick{Slug: "space-horror"}},
	}}

	assert.Equal(t, []string{"space-horror", "classics"}, movie.PickSlugs())
}

func TestUserIsPrivileged(t *testing.T) {
	assert.True(t, (&model.User{IsSuperuser: true}).IsPrivileged())
	assert.True(t, (&model.User{Roles: []model.Role{{Name: "curator"}, {Name: model.AdminRole}}}).IsPrivileged())
	assert.False(t, (&model.User{Roles: []model.Role{{Name: "curator"}}}).IsPrivileged())
}
