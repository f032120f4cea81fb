// Package config holds the client configuration: defaults mirroring the
// public Coinbase API, an optional YAML file, a .env file and COINBASE_*
// environment overrides.
package config
