// Package loader imports movies in bulk from a JSON document.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

// Entry is one movie in an import document.
type Entry struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genre     string   `json:"genre"`
	PosterURL *string  `json:"posterUrl,omitempty"`
	Overview  *string  `json:"overview,omitempty"`
	Picks     []string `json:"picks,omitempty"`
}

type Report struct {
	Total   int
	Loaded  int
	Skipped int
	Err     error
}

// Errors splits the aggregated error into the individual entry failures.
func (r *Report) Errors() []error {
	return multierr.Errors(r.Err)
}

type movieStore interface {
	Create(ctx context.Context, input catalog.MovieInput, createdBy *uint) (*model.Movie, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
}

type pickRegistry interface {
	Attach(ctx context.Context, movieID uint, slug string, addedBy *uint) (*model.MoviePick, error)
}

type Loader struct {
	movies       movieStore
	picks        pickRegistry
	logger       *zap.Logger
	SkipExisting bool
}

func New(movies movieStore, picks pickRegistry, logger *zap.Logger) *Loader {
	return &Loader{movies: movies, picks: picks, logger: logger, SkipExisting: true}
}

// ReadFile decodes an import document: a JSON array of entries.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	return entries, nil
}

// Load creates every entry whose title is not in the catalog yet and attaches its picks. A failing
// entry does not stop the import; its error is collected in the report.
func (l *Loader) Load(ctx context.Context, entries []Entry, createdBy *uint) *Report {
	report := &Report{Total: len(entries)}

	for i, entry := range entries {
		if ctx.Err() != nil {
			report.Err = multierr.Append(report.Err, ctx.Err())

			break
		}

		if l.SkipExisting {
			existing, err := l.movies.FindByTitle(ctx, entry.Title)

			switch {
			case err == nil && existing != nil:
				report.Skipped++

				continue
			case err != nil && !errors.Is(err, repository.ErrNotFound):
				report.Err = multierr.Append(report.Err, fmt.Errorf("entry %d (%q): %w", i, entry.Title, err))

				continue
			}
		}

		movie, err := l.movies.Create(ctx, catalog.MovieInput{
			Title:     entry.Title,
			Year:      entry.Year,
			Genre:     entry.Genre,
			PosterURL: entry.PosterURL,
			Overview:  entry.Overview,
		}, createdBy)
		if err != nil {
			report.Err = multierr.Append(report.Err, fmt.Errorf("entry %d (%q): %w", i, entry.Title, err))

			continue
		}

		report.Loaded++

		for _, slug := range entry.Picks {
			if _, err := l.picks.Attach(ctx, movie.ID, slug, createdBy); err != nil {
				report.Err = multierr.Append(report.Err, fmt.Errorf("entry %d (%q) pick %q: %w", i, entry.Title, slug, err))
			}
		}
	}

	l.logger.Info("movie import finished",
		zap.Int("total", report.Total),
		zap.Int("loaded", report.Loaded),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(report.Errors())))

	return report
}
