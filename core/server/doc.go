// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key protecting every
// route and the graceful shutdown timeout. It is embedded by core/config and
// consumed by the start command.
package server
