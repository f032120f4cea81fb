package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret    = "dolorSitAmet"
	timestamp = int64(1613126414)
)

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"f537a3320e2d33e209e2de9165a3ffcb7bac95fea1c2dc7cc45a76fa20dd528c",
		Sign(secret, timestamp, "GET", "/path", `{"currency" : "BTC"}`))
	assert.Equal(t,
		"d80c4ebb1a2a8c85024b795b7a6bdbfec3e9198b429e7bf31a843affc2d0f9f2",
		Sign(secret, timestamp, "GET", "/path", ""))
}

func TestCredentials_Allowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds Credentials
		want  bool
	}{
		{"both set", Credentials{APIKey: "k", Secret: "s"}, true},
		{"missing key", Credentials{Secret: "s"}, false},
		{"blank secret", Credentials{APIKey: "k", Secret: "  "}, false},
		{"nothing", Credentials{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.creds.Allowed())
			assert.Equal(t, tt.want, Allow(tt.creds).IsSuccess())
		})
	}

	_, err := Allow(Credentials{}).GetOrError(func(e error) error { return e })
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestSigner_Headers(t *testing.T) {
	t.Parallel()

	s := Signer{
		Credentials: Credentials{APIKey: "loremIpsum", Secret: secret, APIVersion: "2021-02-03"},
		Now:         func() time.Time { return time.Unix(timestamp, 0) },
	}

	headers, err := s.Headers("GET", "/path", `{"currency" : "BTC"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		HeaderAccessSign:      "f537a3320e2d33e209e2de9165a3ffcb7bac95fea1c2dc7cc45a76fa20dd528c",
		HeaderAccessTimestamp: "1613126414",
		HeaderAccessKey:       "loremIpsum",
		HeaderVersion:         "2021-02-03",
		HeaderAccept:          AcceptJSON,
	}, headers)

	s.Credentials.APIVersion = ""
	headers, err = s.Headers("GET", "/path", "")
	require.NoError(t, err)
	assert.NotContains(t, headers, HeaderVersion)

	_, err = Signer{}.Headers("GET", "/path", "")
	assert.ErrorIs(t, err, ErrNotAllowed)
}
