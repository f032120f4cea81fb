// Package auth implements Coinbase API key authentication: the credentials
// check guarding private endpoints and the CB-ACCESS-* request signature.
package auth
