package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/pkg/repository"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("bad request")
	ErrNotAuthor    = errors.New("only the author or an administrator may change a review")
	ErrUnavailable  = errors.New("no metadata integration answered")
)

// toConnectError maps catalog failures onto connect codes. Unexpected errors are logged and
// replaced so that storage details never reach the client.
func toConnectError(logger *zap.Logger, procedure string, err error) error {
	var connectErr *connect.Error

	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, repository.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, repository.ErrValidation), errors.Is(err, ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		logger.Error("request failed", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeInternal, ErrInternal)
	}
}
