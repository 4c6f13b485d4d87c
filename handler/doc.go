// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context (the request context plus access to the
// request and response writer) and returns a Response that renders itself.
// Wrap turns it into an http.HandlerFunc; rendering errors and nil responses
// go to an ErrorHandler, which by default writes a JSON error body.
//
//	r.Get("/", handler.Wrap(func(ctx handler.Context) handler.Response {
//		return handler.JSON(map[string]string{"status": "running"})
//	}))
//
// HTTPError values (ErrNotFound, ErrMethodNotAllowed, ...) carry a status
// code and a stable key and are rendered as
//
//	{"error":{"code":"not_found","message":"Not Found"}}
package handler
