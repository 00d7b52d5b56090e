package imdbweb

import "go.uber.org/zap"

const (
	IntegrationName = "imdb_web"
	defaultBaseURL  = "https://www.imdb.com"
	maxResults      = 5
)

type ImdbWebIntegration struct {
	logger  *zap.Logger
	baseURL string
}

type Option func(*ImdbWebIntegration)

// WithBaseURL points the scraper at another host, e.g. a mirror or a test server.
func WithBaseURL(baseURL string) Option {
	return func(i *ImdbWebIntegration) {
		i.baseURL = baseURL
	}
}

func NewImdbWebIntegration(logger *zap.Logger, options ...Option) *ImdbWebIntegration {
	integration := &ImdbWebIntegration{logger: logger, baseURL: defaultBaseURL}

	for _, option := range options {
		option(integration)
	}

	return integration
}
