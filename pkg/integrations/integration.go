package integrations

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/integrations/imdb-web"
	"droscher.com/MovieCatalog/pkg/model"
)

type MovieIntegration interface {
	SearchMovies(ctx context.Context, query string) ([]*model.MovieMetadata, error)
}

func GetIntegration(name string, logger *zap.Logger) MovieIntegration {
	if name == imdbweb.IntegrationName {
		return imdbweb.NewImdbWebIntegration(logger)
	}

	return nil
}

// GetIntegrations resolves the configured names, skipping unknown ones.
func GetIntegrations(names []string, logger *zap.Logger) []MovieIntegration {
	found := make([]MovieIntegration, 0, len(names))

	for _, name := range names {
		integration := GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown movie integration", zap.String("name", name))

			continue
		}

		found = append(found, integration)
	}

	return found
}
