// Package commands defines the kurier CLI: serve runs the relay and REST
// server, keygen produces a P-256 key pair for secure-channel setup.
package commands
