package coinbase

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ib-77/gocoinbase/internal/dto"
	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/chain"
)

// UserService covers the user endpoints; all of them need credentials.
type UserService struct {
	client *Client
	log    *logging.Logger
}

func toUser(_ context.Context, u dto.User) model.User {
	return u.ToModel()
}

// Current returns the user owning the API key.
func (s *UserService) Current(ctx context.Context) rop.Result[error, model.User] {
	res := chain.Start(ctx, s.client.send(ctx, request{method: http.MethodGet, path: s.client.cfg.Paths.User, private: true}))
	return chain.Map(chain.Then(res, withoutCtx(decodeData[dto.User](s.log))), toUser).Result()
}

// ByID returns the public profile of another user.
func (s *UserService) ByID(ctx context.Context, id string) rop.Result[error, model.User] {
	res := chain.Then(requireID(ctx, "user", id), func(ctx context.Context, id string) rop.Result[error, response] {
		return s.client.send(ctx, request{
			method:  http.MethodGet,
			path:    s.client.cfg.Paths.Users + "/" + url.PathEscape(id),
			private: true,
		})
	})
	return chain.Map(chain.Then(res, withoutCtx(decodeData[dto.User](s.log))), toUser).Result()
}

// Authorizations returns the method and scopes of the API key.
func (s *UserService) Authorizations(ctx context.Context) rop.Result[error, model.Authorizations] {
	return rop.Map(
		rop.FlatMap(
			s.client.send(ctx, request{method: http.MethodGet, path: s.client.cfg.Paths.UserAuth, private: true}),
			decodeData[dto.Authorizations](s.log)),
		dto.Authorizations.ToModel)
}

// UpdateCurrent changes the non-empty fields of req on the current user.
func (s *UserService) UpdateCurrent(ctx context.Context, req model.UpdateCurrentUserRequest) rop.Result[error, model.User] {
	res := chain.Then(chain.FromValue(ctx, req),
		func(ctx context.Context, r model.UpdateCurrentUserRequest) rop.Result[error, response] {
			if r.IsEmpty() {
				return rop.Failure[response](invalid("update current user: nothing to update"))
			}
			return s.client.send(ctx, request{method: http.MethodPut, path: s.client.cfg.Paths.User, body: r, private: true})
		})
	return chain.Map(chain.Then(res, withoutCtx(decodeData[dto.User](s.log))), toUser).Result()
}

// requireID starts a chain with the trimmed id, failing with ErrInvalidRequest
// when it is blank.
func requireID(ctx context.Context, what, id string) *chain.Chain[string] {
	id = strings.TrimSpace(id)
	if id == "" {
		return chain.Start(ctx, rop.Failure[string](invalid("%s id is required", what)))
	}
	return chain.FromValue(ctx, id)
}

func withoutCtx[In, Out any](f func(In) rop.Result[error, Out]) func(context.Context, In) rop.Result[error, Out] {
	return func(_ context.Context, in In) rop.Result[error, Out] {
		return f(in)
	}
}
