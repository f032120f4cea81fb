// Package model holds the Coinbase domain types returned by the client. They
// are decoupled from the JSON wire format, which lives in internal/dto.
package model
