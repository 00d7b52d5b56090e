package server

import (
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"

	"droscher.com/MovieCatalog/pkg/server/api/v1/apiv1connect"
)

type Services struct {
	Movies    *MovieServer
	Picks     *PickServer
	Reviews   *ReviewServer
	Favorites *FavoriteServer
	Users     *UserServer
}

// ServiceNames lists every catalog.v1 service served by Routes.
var ServiceNames = []string{
	apiv1connect.MovieServiceName,
	apiv1connect.PickServiceName,
	apiv1connect.ReviewServiceName,
	apiv1connect.FavoriteServiceName,
	apiv1connect.UserServiceName,
}

// Routes mounts the services and the gRPC health endpoint on one mux.
func Routes(services Services, options ...connect.HandlerOption) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle(apiv1connect.NewMovieServiceHandler(services.Movies, options...))
	mux.Handle(apiv1connect.NewPickServiceHandler(services.Picks, options...))
	mux.Handle(apiv1connect.NewReviewServiceHandler(services.Reviews, options...))
	mux.Handle(apiv1connect.NewFavoriteServiceHandler(services.Favorites, options...))
	mux.Handle(apiv1connect.NewUserServiceHandler(services.Users, options...))

	checker := grpchealth.NewStaticChecker(ServiceNames...)
	mux.Handle(grpchealth.NewHandler(checker))

	return mux
}
