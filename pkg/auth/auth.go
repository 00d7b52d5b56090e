package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

type UserKey struct{}

var (
	ErrNoIdentity   = errors.New("authentication required")
	ErrInsufficient = errors.New("insufficient privileges")
	ErrNoSigningKey = errors.New("no token signing key configured")

	errNoIdentityClaim = errors.New("unable to get user id from token")
)

type userLookup interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	users  userLookup
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users userLookup, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// AuthInterceptor resolves the bearer token into a user stored under UserKey. Requests without an
// Authorization header pass through anonymously; the handlers decide whether they need a user.
func (a *Manager) AuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			accessToken, err := a.extractTokenFromHeader(req.Header())
			if err != nil {
				return nil, err
			}

			if accessToken == nil {
				return next(ctx, req)
			}

			user, err := a.authenticate(ctx, *accessToken)
			if err != nil {
				return nil, err
			}

			return next(context.WithValue(ctx, UserKey{}, user), req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		if a.conf.Auth.SecretKey == "" {
			return nil, ErrNoSigningKey
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("error parsing token: %w", err))
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token"))
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("aud", claims["aud"]))

		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token audience"))
	}

	user, err := a.lookup(ctx, claims)
	if errors.Is(err, errNoIdentityClaim) {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("user not found"))
	}

	if err != nil {
		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, errors.New("error authenticating user"))
	}

	return user, nil
}

// lookup resolves the email claim, falling back to a uuid subject.
func (a *Manager) lookup(ctx context.Context, claims jwt.MapClaims) (*model.User, error) {
	if email, found := claims["email"].(string); found {
		return a.users.GetUserFromEmail(ctx, email)
	}

	if subject, found := claims["sub"].(string); found {
		if id, err := uuid.Parse(subject); err == nil {
			return a.users.GetUserByUUID(ctx, id)
		}
	}

	return nil, errNoIdentityClaim
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, nil //nolint:nilnil // no header means an anonymous request
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("authorization format must be Bearer {token}"))
	}

	return &token, nil
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok && user != nil
}

// RequireUser fails with CodeUnauthenticated for anonymous calls.
func RequireUser(ctx context.Context) (*model.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoIdentity)
	}

	return user, nil
}

// RequirePrivileged fails unless the caller is a superuser or holds the admin role.
func RequirePrivileged(ctx context.Context) (*model.User, error) {
	user, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if !user.IsPrivileged() {
		return nil, connect.NewError(connect.CodePermissionDenied, ErrInsufficient)
	}

	return user, nil
}
