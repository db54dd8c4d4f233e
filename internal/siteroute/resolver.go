package siteroute

import (
	"time"

	"github.com/changil/changilweb-server/internal/session"
)

// Resolution is the page to render for a path.
type Resolution struct {
	Path     string
	Page     Page
	Params   map[string]string
	Redirect string
}

// Resolver matches paths and applies the session guard to protected
// pages. It is the only place the guard runs.
type Resolver struct {
	Guard *session.Guard
	Now   func() time.Time
}

// NewResolver returns a Resolver using the default guard and wall clock.
func NewResolver() *Resolver {
	return &Resolver{Guard: session.NewGuard(), Now: time.Now}
}

// Resolve returns the page for path. A protected page with a missing or
// stale login resolves to the login page with Redirect set.
func (r *Resolver) Resolve(path string, store session.Store) Resolution {
	path = Clean(path)
	m := MatchPath(path)
	res := Resolution{Path: path, Page: m.Page, Params: m.Params}
	if !m.Protected {
		return res
	}

	d := r.Guard.Check(store, r.Now())
	if d.Allowed {
		return res
	}
	return Resolution{Path: d.Redirect, Page: MatchPath(d.Redirect).Page, Redirect: d.Redirect}
}

// Follow resolves every navigation on nav and passes the result to render.
// Guard redirects replace the current entry. The returned function stops
// following.
func (r *Resolver) Follow(nav *Navigator, store session.Store, render func(Resolution)) func() {
	handle := func(path string) {
		res := r.Resolve(path, store)
		if res.Redirect != "" && res.Redirect != path {
			nav.Replace(res.Redirect)
			return
		}
		render(res)
	}
	stop := nav.Subscribe(handle)
	handle(nav.Current())
	return stop
}
