package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/gocoinbase/pkg/rop"
)

const (
	HeaderAccept          = "Accept"
	HeaderAccessSign      = "CB-ACCESS-SIGN"
	HeaderAccessTimestamp = "CB-ACCESS-TIMESTAMP"
	HeaderAccessKey       = "CB-ACCESS-KEY"
	HeaderVersion         = "CB-VERSION"

	AcceptJSON = "application/json"
)

var ErrNotAllowed = errors.New("an api key and a secret are required to access this resource")

type Credentials struct {
	APIKey     string
	Secret     string
	APIVersion string
}

// Allowed reports whether both the key and the secret are non-blank.
func (c Credentials) Allowed() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.Secret) != ""
}

func Allow(c Credentials) rop.Result[error, struct{}] {
	if c.Allowed() {
		return rop.Success[error](struct{}{})
	}
	return rop.Failure[struct{}](ErrNotAllowed)
}

// Sign returns the lowercase hex HMAC-SHA256 of timestamp+method+path+body
// keyed with secret. path includes the query string when there is one.
func Sign(secret string, timestamp int64, method, path, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10) + method + path + body))
	return hex.EncodeToString(mac.Sum(nil))
}

type Signer struct {
	Credentials Credentials
	// Now defaults to time.Now.
	Now func() time.Time
}

// Headers returns the authentication headers for one request.
func (s Signer) Headers(method, path, body string) (map[string]string, error) {
	if !s.Credentials.Allowed() {
		return nil, fmt.Errorf("sign %s %s: %w", method, path, ErrNotAllowed)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	ts := now().Unix()

	headers := map[string]string{
		HeaderAccessSign:      Sign(s.Credentials.Secret, ts, method, path, body),
		HeaderAccessTimestamp: strconv.FormatInt(ts, 10),
		HeaderAccessKey:       s.Credentials.APIKey,
		HeaderAccept:          AcceptJSON,
	}
	if s.Credentials.APIVersion != "" {
		headers[HeaderVersion] = s.Credentials.APIVersion
	}
	return headers, nil
}
