// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key protecting every
// route and whether the Swagger documentation is served. It is embedded in
// core/config and read by the start command.
package server
