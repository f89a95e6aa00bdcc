// Package http implements the JSON API of the local ar-fit server.
//
// It wires chi routes to the services and carries the cross-cutting
// middleware: panic recovery, request tracing, access logging, request
// timeouts, gzip request bodies and the session check for routes that act
// on the logged-in user. Service errors are translated into status codes by
// errorStatusMap and into user-visible text by the app message catalog.
package http
