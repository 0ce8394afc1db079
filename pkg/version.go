// Package gegraptai resolves free-form biblical citations into structured
// references and serves the matching verses from a local corpus store.
package gegraptai

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
