package imdbweb

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/model"
)

var titleIDPattern = regexp.MustCompile(`/title/(tt\d+)`)

// MovieJSON is the schema.org Movie document embedded in a title page.
type MovieJSON struct {
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	DatePublished   string          `json:"datePublished"`
	Genre           json.RawMessage `json:"genre"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		BestRating  float64 `json:"bestRating"`
		RatingCount int     `json:"ratingCount"`
	} `json:"aggregateRating"`
}

type scrapeResult struct {
	movie *model.MovieMetadata
	err   error
}

func (i *ImdbWebIntegration) SearchMovies(ctx context.Context, query string) ([]*model.MovieMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(i.baseURL)
	if err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.AllowedDomains(base.Hostname()),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs     error
		titleIDs []string
	)

	seen := make(map[string]struct{})

	collector.OnHTML("a[href*='/title/tt']", func(element *colly.HTMLElement) {
		match := titleIDPattern.FindStringSubmatch(element.Attr("href"))
		if match == nil || len(titleIDs) >= maxResults {
			return
		}

		if _, found := seen[match[1]]; found {
			return
		}

		seen[match[1]] = struct{}{}
		titleIDs = append(titleIDs, match[1])
	})

	collector.OnError(func(response *colly.Response, err error) {
		i.logger.Error("error while scraping movie search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	i.logger.Info("scraping query results", zap.String("query", query))

	searchURL := i.baseURL + "/find/?s=tt&q=" + url.QueryEscape(query)
	if multierr.AppendInto(&errs, collector.Visit(searchURL)) {
		return nil, errs
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup

	resultChan := make(chan scrapeResult, len(titleIDs))

	for _, titleID := range titleIDs {
		wg.Add(1)

		go func(detailCollector *colly.Collector, titleID string) {
			defer wg.Done()

			resultChan <- i.getMovieData(detailCollector, titleID)
		}(collector.Clone(), titleID)
	}

	wg.Wait()
	close(resultChan)

	byID := make(map[string]*model.MovieMetadata, len(titleIDs))

	for result := range resultChan {
		if multierr.AppendInto(&errs, result.err) || result.movie == nil {
			continue
		}

		byID[result.movie.ExternalID] = result.movie
	}

	results := make([]*model.MovieMetadata, 0, len(byID))

	for _, titleID := range titleIDs {
		if movie, found := byID[titleID]; found {
			results = append(results, movie)
		}
	}

	i.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (i *ImdbWebIntegration) getMovieData(detailCollector *colly.Collector, titleID string) scrapeResult {
	var (
		movie    *model.MovieMetadata
		parseErr error
	)

	detailCollector.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var movieJSON MovieJSON
		if err := json.Unmarshal([]byte(element.Text), &movieJSON); err != nil {
			parseErr = err

			return
		}

		if movieJSON.Type != "Movie" {
			return
		}

		i.logger.Info("successfully scraped movie from JSON data", zap.String("id", titleID), zap.String("title", movieJSON.Name))

		movie = fromJSON(titleID, movieJSON)
	})

	i.logger.Info("scraping movie page", zap.String("id", titleID))

	err := detailCollector.Visit(i.baseURL + "/title/" + titleID + "/")
	if err != nil {
		return scrapeResult{err: err}
	}

	return scrapeResult{movie: movie, err: parseErr}
}

func fromJSON(titleID string, movieJSON MovieJSON) *model.MovieMetadata {
	movie := &model.MovieMetadata{
		Source:     IntegrationName,
		ExternalID: titleID,
		Title:      movieJSON.Name,
		Year:       extractYear(movieJSON.DatePublished),
		Genre:      strings.Join(extractGenres(movieJSON.Genre), ", "),
	}

	if movieJSON.Description != "" {
		movie.Overview = pointy.String(movieJSON.Description)
	}

	if movieJSON.Image != "" {
		movie.PosterURL = pointy.String(movieJSON.Image)
	}

	if movieJSON.AggregateRating.RatingValue > 0 {
		movie.ExternalRating = pointy.Float64(movieJSON.AggregateRating.RatingValue)
	}

	return movie
}

func extractYear(datePublished string) int {
	if len(datePublished) < 4 {
		return 0
	}

	year, err := strconv.Atoi(datePublished[:4])
	if err != nil {
		return 0
	}

	return year
}

// extractGenres accepts both the single string and the list form of the genre property.
func extractGenres(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var genres []string
	if err := json.Unmarshal(raw, &genres); err == nil {
		return genres
	}

	var genre string
	if err := json.Unmarshal(raw, &genre); err == nil && genre != "" {
		return []string{genre}
	}

	return nil
}
