package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/integrations"
	"droscher.com/MovieCatalog/pkg/loader"
	"droscher.com/MovieCatalog/pkg/model"
	apiv1 "droscher.com/MovieCatalog/pkg/server/api/v1"
	"droscher.com/MovieCatalog/pkg/server/api/v1/apiv1connect"
	"droscher.com/MovieCatalog/pkg/server/convert"
)

type MovieServer struct {
	apiv1connect.UnimplementedMovieServiceHandler
	movies       *catalog.MovieStore
	query        *catalog.QueryService
	importer     *loader.Loader
	integrations []integrations.MovieIntegration
	logger       *zap.Logger
}

func NewMovieServer(c *catalog.Catalog, importer *loader.Loader, movieIntegrations []integrations.MovieIntegration, logger *zap.Logger) *MovieServer {
	return &MovieServer{
		movies:       c.Movies,
		query:        c.Query,
		importer:     importer,
		integrations: movieIntegrations,
		logger:       logger,
	}
}

func (m *MovieServer) ListMovies(ctx context.Context, request *connect.Request[apiv1.ListMoviesRequest]) (*connect.Response[apiv1.ListMoviesResponse], error) {
	msg := request.Msg
	filter := model.MovieFilter{
		Genre:     convert.OptionalString(msg.Genre),
		Year:      convert.OptionalInt(msg.Year),
		Search:    convert.OptionalString(msg.Search),
		RatingMin: msg.RatingMin,
		RatingMax: msg.RatingMax,
		PickSlug:  convert.OptionalString(msg.Pick),
	}

	result, err := m.query.Query(ctx, filter, convert.Page(msg.Skip, msg.Limit))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.ListMoviesResponse{
		Movies: convert.MoviesFromModel(result.Movies),
		Total:  result.Total,
		Skip:   int32(result.Page.Skip),  //nolint:gosec // clamped by the catalog
		Limit:  int32(result.Page.Limit), //nolint:gosec // clamped by the catalog
	}), nil
}

func (m *MovieServer) GetMovie(ctx context.Context, request *connect.Request[apiv1.GetMovieRequest]) (*connect.Response[apiv1.GetMovieResponse], error) {
	movie, err := m.movies.Get(ctx, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetMovieResponse{Movie: convert.MovieFromModel(movie)}), nil
}

func (m *MovieServer) SearchMovies(ctx context.Context, request *connect.Request[apiv1.SearchMoviesRequest]) (*connect.Response[apiv1.SearchMoviesResponse], error) {
	msg := request.Msg

	movies, err := m.movies.Search(ctx, msg.Query, convert.Page(msg.Skip, msg.Limit))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.SearchMoviesResponse{Movies: convert.MoviesFromModel(movies)}), nil
}

func (m *MovieServer) CreateMovie(ctx context.Context, request *connect.Request[apiv1.CreateMovieRequest]) (*connect.Response[apiv1.CreateMovieResponse], error) {
	user, err := auth.RequirePrivileged(ctx)
	if err != nil {
		return nil, err
	}

	msg := request.Msg
	input := catalog.MovieInput{
		Title:     msg.Title,
		Year:      int(msg.Year),
		Genre:     msg.Genre,
		Rating:    msg.Rating,
		PosterURL: msg.PosterURL,
		Overview:  msg.Overview,
	}

	movie, err := m.movies.Create(ctx, input, &user.ID)
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.CreateMovieResponse{Movie: convert.MovieFromModel(movie)}), nil
}

func (m *MovieServer) UpdateMovie(ctx context.Context, request *connect.Request[apiv1.UpdateMovieRequest]) (*connect.Response[apiv1.UpdateMovieResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	msg := request.Msg
	update := model.MovieUpdate{
		Title:     msg.Title,
		Year:      convert.OptionalInt(msg.Year),
		Genre:     msg.Genre,
		PosterURL: msg.PosterURL,
		Overview:  msg.Overview,
	}

	movie, err := m.movies.Update(ctx, uint(msg.MovieID), update)
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.UpdateMovieResponse{Movie: convert.MovieFromModel(movie)}), nil
}

func (m *MovieServer) DeleteMovie(ctx context.Context, request *connect.Request[apiv1.DeleteMovieRequest]) (*connect.Response[apiv1.DeleteMovieResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	deleted, err := m.movies.Delete(ctx, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.DeleteMovieResponse{Deleted: deleted}), nil
}

func (m *MovieServer) GetMovieStats(ctx context.Context, request *connect.Request[apiv1.GetMovieStatsRequest]) (*connect.Response[apiv1.GetMovieStatsResponse], error) {
	stats, err := m.movies.Stats(ctx, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.GetMovieStatsResponse{Stats: convert.StatsFromModel(stats)}), nil
}

func (m *MovieServer) IncrementMovieViews(ctx context.Context, request *connect.Request[apiv1.IncrementMovieViewsRequest]) (*connect.Response[apiv1.IncrementMovieViewsResponse], error) {
	views, err := m.movies.RecordView(ctx, uint(request.Msg.MovieID))
	if err != nil {
		return nil, toConnectError(m.logger, request.Spec().Procedure, err)
	}

	return connect.NewResponse(&apiv1.IncrementMovieViewsResponse{Views: views}), nil
}

// FindMovieMetadata asks every configured integration for candidates. Integrations that fail are
// logged and skipped; the call only fails when none of them answered.
func (m *MovieServer) FindMovieMetadata(ctx context.Context, request *connect.Request[apiv1.FindMovieMetadataRequest]) (*connect.Response[apiv1.FindMovieMetadataResponse], error) {
	if _, err := auth.RequirePrivileged(ctx); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(request.Msg.Query)
	if query == "" {
		return nil, toConnectError(m.logger, request.Spec().Procedure, fmt.Errorf("%w: query must not be empty", ErrInvalidInput))
	}

	var (
		candidates []*model.MovieMetadata
		errs       error
		answered   int
	)

	for _, integration := range m.integrations {
		found, err := integration.SearchMovies(ctx, query)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		answered++
		candidates = append(candidates, found...)
	}

	if errs != nil {
		m.logger.Warn("metadata integration failed", zap.String("query", query), zap.Error(errs))
	}

	if answered == 0 && len(m.integrations) > 0 {
		return nil, connect.NewError(connect.CodeUnavailable, ErrUnavailable)
	}

	return connect.NewResponse(&apiv1.FindMovieMetadataResponse{Candidates: convert.MetadataFromModel(candidates)}), nil
}

func (m *MovieServer) ImportMovies(ctx context.Context, request *connect.Request[apiv1.ImportMoviesRequest]) (*connect.Response[apiv1.ImportMoviesResponse], error) {
	user, err := auth.RequirePrivileged(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]loader.Entry, 0, len(request.Msg.Movies))
	for _, movie := range request.Msg.Movies {
		entries = append(entries, loader.Entry{
			Title:     movie.Title,
			Year:      int(movie.Year),
			Genre:     movie.Genre,
			PosterURL: movie.PosterURL,
			Overview:  movie.Overview,
			Picks:     movie.Picks,
		})
	}

	report := m.importer.Load(ctx, entries, &user.ID)

	messages := make([]string, 0, len(report.Errors()))
	for _, err := range report.Errors() {
		messages = append(messages, err.Error())
	}

	return connect.NewResponse(&apiv1.ImportMoviesResponse{Report: &apiv1.ImportReport{
		Total:   int32(report.Total),   //nolint:gosec // bounded by the request size
		Loaded:  int32(report.Loaded),  //nolint:gosec // bounded by the request size
		Skipped: int32(report.Skipped), //nolint:gosec // bounded by the request size
		Errors:  messages,
	}}), nil
}
