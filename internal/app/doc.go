// Package app assembles kurier: configuration loading, dependency
// wiring, and the HTTP server lifecycle.
package app
