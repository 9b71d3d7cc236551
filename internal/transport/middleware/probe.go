package middleware

import (
	"context"
	"net/http"

	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

// Outer middleware cannot see values inner middleware adds to the request
// context, so they leave mutable probes in it that inner layers fill in.

type probeKey int

const (
	identityProbeKey probeKey = iota
	routeProbeKey
)

type identityProbe struct {
	id  ctxutil.Identity
	set bool
}

func withIdentityProbe(ctx context.Context, p *identityProbe) context.Context {
	return context.WithValue(ctx, identityProbeKey, p)
}

// reportIdentity fills the identity probe left by Logger, if any.
func reportIdentity(ctx context.Context, id ctxutil.Identity) {
	if p, ok := ctx.Value(identityProbeKey).(*identityProbe); ok {
		p.id, p.set = id, true
	}
}

type routeProbe struct {
	pattern string
}

// Route records the matched mux pattern for the metrics middleware. The
// router wraps every registered handler with it.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := r.Context().Value(routeProbeKey).(*routeProbe); ok {
			p.pattern = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}
