package coinbase

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ib-77/gocoinbase/internal/dto"
	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

// decodeData unwraps the {"data": ...} envelope of a successful response.
func decodeData[T any](log *logging.Logger) func(response) rop.Result[error, T] {
	return func(res response) rop.Result[error, T] {
		if !res.ok() {
			return solo.Fail[T](decodeFailure(res))
		}
		var env dto.Data[T]
		if err := json.Unmarshal(res.body, &env); err != nil {
			return solo.Fail[T](fmt.Errorf("%w: %w", ErrDecode, err))
		}
		warn(log, res, env.Warnings)
		return solo.Succeed(env.Data)
	}
}

func decodePage[T any](log *logging.Logger) func(response) rop.Result[error, dto.Paginated[T]] {
	return func(res response) rop.Result[error, dto.Paginated[T]] {
		if !res.ok() {
			return solo.Fail[dto.Paginated[T]](decodeFailure(res))
		}
		var env dto.Paginated[T]
		if err := json.Unmarshal(res.body, &env); err != nil {
			return solo.Fail[dto.Paginated[T]](fmt.Errorf("%w: %w", ErrDecode, err))
		}
		warn(log, res, env.Warnings)
		return solo.Succeed(env)
	}
}

// expectEmpty accepts any successful response and ignores its body.
func expectEmpty(res response) rop.Result[error, struct{}] {
	if !res.ok() {
		return solo.Fail[struct{}](decodeFailure(res))
	}
	return solo.Succeed(struct{}{})
}

func decodeFailure(res response) *APIError {
	apiErr := &APIError{StatusCode: res.status, RequestID: res.requestID}

	var body dto.Errors
	if err := json.Unmarshal(res.body, &body); err == nil {
		apiErr.Errors = body.ToModel()
	}
	if len(apiErr.Errors) == 0 {
		apiErr.Errors = dto.Synthesized(res.status, string(res.body))
	}
	return apiErr
}

func warn(log *logging.Logger, res response, warnings []dto.Warning) {
	for _, w := range dto.Warnings(warnings) {
		log.Warn("coinbase returned a warning",
			zap.String("request_id", res.requestID),
			zap.String("id", w.ID),
			zap.String("message", w.Message),
			zap.String("url", w.URL))
	}
}
