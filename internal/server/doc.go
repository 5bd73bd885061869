// Package server runs the local Users API over HTTP, including signal
// handling and graceful shutdown.
package server
