// Package dto holds the JSON shapes of the Coinbase v2 API and their mapping
// to package model. Nothing outside pkg/coinbase should depend on it.
package dto
