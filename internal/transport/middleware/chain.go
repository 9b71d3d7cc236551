// Package middleware holds the HTTP layers wrapped around the ChurchConnect
// router: panic recovery, request ids, metrics, access logging, CORS,
// bearer-token identity and the public rate limiter.
package middleware

import "net/http"

// Middleware decorates a handler.
type Middleware func(http.Handler) http.Handler

// Chain nests mws around a handler with mws[0] outermost, so the router can
// list its layers in the order a request passes through them.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
