package coinbase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/gocoinbase/pkg/coinbase/auth"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

const HeaderRequestID = "X-Request-Id"

var errRetryableStatus = errors.New("retryable status")

type request struct {
	method string
	// path is relative to the base url and may carry a query string.
	path    string
	body    any
	private bool
}

type response struct {
	status    int
	body      []byte
	requestID string
}

func (r response) ok() bool {
	return r.status >= http.StatusOK && r.status <= http.StatusNoContent
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// send performs req, retrying transport failures, 429 and 5xx responses.
// Private requests fail with ErrNotAllowed before anything is sent when the
// client has no credentials.
func (c *Client) send(ctx context.Context, req request) rop.Result[error, response] {
	allowed := solo.Succeed(struct{}{})
	if req.private {
		allowed = auth.Allow(c.signer.Credentials)
	}

	return solo.Switch(ctx, allowed, func(ctx context.Context, _ struct{}) rop.Result[error, response] {
		body, err := encodeBody(req.body)
		if err != nil {
			return solo.Fail[response](err)
		}
		return c.execute(ctx, req, body)
	})
}

func encodeBody(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: encode body: %w", ErrInvalidRequest, err)
	}
	return string(b), nil
}

func (c *Client) execute(ctx context.Context, req request, body string) rop.Result[error, response] {
	requestID := uuid.NewString()
	log := c.log.With(
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.String("request_id", requestID))

	var last *response
	attempt := 0

	operation := func() error {
		attempt++
		last = nil

		r := c.http.R().
			SetContext(ctx).
			SetHeader(HeaderRequestID, requestID)
		if body != "" {
			r.SetHeader("Content-Type", "application/json").SetBody([]byte(body))
		}
		if req.private {
			headers, err := c.signer.Headers(req.method, req.path, body)
			if err != nil {
				return backoff.Permanent(err)
			}
			r.SetHeaders(headers)
		}

		resp, err := r.Execute(req.method, req.path)
		if err != nil {
			log.Debug("request failed", zap.Int("attempt", attempt), zap.Error(err))
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		last = &response{status: resp.StatusCode(), body: resp.Bytes(), requestID: requestID}
		log.Debug("response received", zap.Int("attempt", attempt), zap.Int("status", last.status))
		if retryableStatus(last.status) {
			return errRetryableStatus
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.cfg.MaxRetries), ctx)
	err := backoff.Retry(operation, policy)

	if last != nil && (err == nil || errors.Is(err, errRetryableStatus)) {
		return solo.Succeed(*last)
	}

	log.Error("request abandoned", zap.Int("attempts", attempt), zap.Error(err))
	return solo.Fail[response](fmt.Errorf("%w: %s %s: %w", ErrTransport, req.method, req.path, err))
}
