package model

import "fmt"

// CoinbaseError is one entry of the errors array Coinbase returns on failure.
// See https://developers.coinbase.com/api/v2#errors.
type CoinbaseError struct {
	ID      string
	Message string
	URL     string
}

func (e CoinbaseError) String() string {
	if e.URL == "" {
		return fmt.Sprintf("%s: %s", e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.ID, e.Message, e.URL)
}

// Warning is a non-fatal notice attached to a successful response.
type Warning struct {
	ID      string
	Message string
	URL     string
}
