// Package config resolves build settings. Values come from command-line
// flags, MARKETPLACE_* environment variables (optionally loaded from a .env
// file), and a marketplace.yaml file in the working directory, in that order
// of precedence.
package config
