package coinbase

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ib-77/gocoinbase/internal/dto"
	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/chain"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

// AccountService covers the account endpoints; all of them need credentials.
type AccountService struct {
	client *Client
	log    *logging.Logger
}

func (s *AccountService) accountPath(id string) string {
	return s.client.cfg.Paths.Accounts + "/" + url.PathEscape(id)
}

func (s *AccountService) pageAt(ctx context.Context, uri string) rop.Result[error, model.AccountsPage] {
	res := s.client.send(ctx, request{method: http.MethodGet, path: uri, private: true})
	page := rop.Map(rop.FlatMap(res, decodePage[dto.Account](s.log)), func(p dto.Paginated[dto.Account]) model.AccountsPage {
		return dto.ToPage(p, dto.Account.ToModel)
	})
	return page.PeekSuccess(func(p model.AccountsPage) {
		s.log.Debug("accounts page fetched",
			zap.Int("accounts", len(p.Data)),
			zap.Bool("has_next", p.Pagination.HasNext()))
	})
}

// Page returns the first page of accounts.
func (s *AccountService) Page(ctx context.Context) rop.Result[error, model.AccountsPage] {
	return s.pageAt(ctx, s.client.cfg.Paths.Accounts)
}

// NextPage follows pagination.NextURI; ErrNoNextPage when there is none.
func (s *AccountService) NextPage(ctx context.Context, pagination model.Pagination) rop.Result[error, model.AccountsPage] {
	if !pagination.HasNext() {
		return solo.Fail[model.AccountsPage](ErrNoNextPage)
	}
	return s.pageAt(ctx, pagination.NextURI)
}

// PreviousPage follows pagination.PreviousURI; ErrNoPreviousPage when there
// is none.
func (s *AccountService) PreviousPage(ctx context.Context, pagination model.Pagination) rop.Result[error, model.AccountsPage] {
	if !pagination.HasPrevious() {
		return solo.Fail[model.AccountsPage](ErrNoPreviousPage)
	}
	return s.pageAt(ctx, pagination.PreviousURI)
}

// All walks every page starting from the first one.
func (s *AccountService) All(ctx context.Context) rop.Result[error, []model.Account] {
	var accounts []model.Account
	page := s.Page(ctx)
	for {
		current, err := solo.Unpack(page)
		if err != nil {
			return solo.Fail[[]model.Account](err)
		}
		accounts = append(accounts, current.Data...)
		if !current.Pagination.HasNext() {
			return solo.Succeed(accounts)
		}
		page = s.NextPage(ctx, current.Pagination)
	}
}

func (s *AccountService) Get(ctx context.Context, id string) rop.Result[error, model.Account] {
	res := chain.Then(requireID(ctx, "account", id), func(ctx context.Context, id string) rop.Result[error, response] {
		return s.client.send(ctx, request{method: http.MethodGet, path: s.accountPath(id), private: true})
	})
	return s.toAccount(res)
}

// Update renames an account.
func (s *AccountService) Update(ctx context.Context, id string, req model.UpdateAccountRequest) rop.Result[error, model.Account] {
	res := chain.Then(requireID(ctx, "account", id), func(ctx context.Context, id string) rop.Result[error, response] {
		if req.Name == "" {
			return rop.Failure[response](invalid("update account %s: nothing to update", id))
		}
		return s.client.send(ctx, request{method: http.MethodPut, path: s.accountPath(id), body: req, private: true})
	})
	return s.toAccount(res)
}

// Delete removes an account. Coinbase answers 204 with no body.
func (s *AccountService) Delete(ctx context.Context, id string) rop.Result[error, struct{}] {
	res := chain.Then(requireID(ctx, "account", id), func(ctx context.Context, id string) rop.Result[error, response] {
		return s.client.send(ctx, request{method: http.MethodDelete, path: s.accountPath(id), private: true})
	})
	return chain.Then(res, withoutCtx(expectEmpty)).
		Ensure(func(_ context.Context, _ struct{}) { s.log.Info("account deleted", zap.String("id", id)) }).
		Result()
}

func (s *AccountService) toAccount(res *chain.Chain[response]) rop.Result[error, model.Account] {
	return chain.Map(
		chain.Then(res, withoutCtx(decodeData[dto.Account](s.log))),
		func(_ context.Context, a dto.Account) model.Account { return a.ToModel() }).Result()
}
