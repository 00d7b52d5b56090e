package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

// PickInput describes a new pick. An empty slug is derived from the name.
type PickInput struct {
	Name        string `validate:"notblank"`
	Slug        string `validate:"slug"`
	Description *string
}

type pickUpdateRules struct {
	Name *string `validate:"omitnil,notblank"`
}

// PickRegistry owns picks and their movie memberships.
type PickRegistry struct {
	picks     repository.PickRepository
	validator *Validator
	logger    *zap.Logger
}

func NewPickRegistry(picks repository.PickRepository, validator *Validator, logger *zap.Logger) *PickRegistry {
	return &PickRegistry{picks: picks, validator: validator, logger: logger}
}

func (p *PickRegistry) Create(ctx context.Context, input PickInput, createdBy *uint) (*model.Pick, error) {
	input.Name = strings.TrimSpace(input.Name)

	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = Slugify(input.Name)
	}

	if err := p.validator.Struct(input); err != nil {
		return nil, err
	}

	if input.Slug == repository.AllPicks {
		return nil, invalid("slug %q is reserved", input.Slug)
	}

	pick, err := p.picks.AddPick(ctx, model.Pick{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("pick created", zap.String("slug", pick.Slug))

	return pick, nil
}

func (p *PickRegistry) GetBySlug(ctx context.Context, slug string) (*model.Pick, error) {
	return p.picks.GetPickBySlug(ctx, slug)
}

// List returns every pick ordered by name.
func (p *PickRegistry) List(ctx context.Context) ([]*model.Pick, error) {
	return p.picks.GetPicks(ctx)
}

// Update changes name and description. The slug never changes.
func (p *PickRegistry) Update(ctx context.Context, slug string, name *string, description *string) (*model.Pick, error) {
	name = trimmed(name)

	if err := p.validator.Struct(pickUpdateRules{Name: name}); err != nil {
		return nil, err
	}

	return p.picks.UpdatePick(ctx, slug, name, description)
}

func (p *PickRegistry) Delete(ctx context.Context, slug string) (bool, error) {
	if err := p.picks.DeletePick(ctx, slug); err != nil {
		return false, err
	}

	p.logger.Info("pick deleted", zap.String("slug", slug))

	return true, nil
}

// Attach adds a movie to a pick. Attaching twice is a conflict.
func (p *PickRegistry) Attach(ctx context.Context, movieID uint, slug string, addedBy *uint) (*model.MoviePick, error) {
	return p.picks.AttachPick(ctx, movieID, slug, addedBy)
}

// Detach reports whether a membership was removed.
func (p *PickRegistry) Detach(ctx context.Context, movieID uint, slug string) (bool, error) {
	return p.picks.DetachPick(ctx, movieID, slug)
}

func (p *PickRegistry) PicksForMovie(ctx context.Context, movieID uint) ([]*model.Pick, error) {
	return p.picks.GetPicksForMovie(ctx, movieID)
}

func (p *PickRegistry) MoviesForPick(ctx context.Context, slug string, page model.Page) ([]*model.Movie, error) {
	return p.picks.GetMoviesForPick(ctx, slug, p.validator.Page(page))
}
