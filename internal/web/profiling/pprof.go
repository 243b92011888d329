// Package profiling serves the pprof endpoints of a running server. They
// expose goroutine stacks and memory contents and are disabled by default.
package profiling

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// Path is where the endpoints are mounted
const Path = "/debug/pprof"

// profiles are served through pprof.Handler
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// Handler returns a router serving the pprof index, the CPU profile, the
// execution trace and the named runtime profiles
func Handler() http.Handler {
	r := chi.NewRouter()
	r.HandleFunc("/", pprof.Index)
	r.HandleFunc("/cmdline", pprof.Cmdline)
	r.HandleFunc("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.HandleFunc("/trace", pprof.Trace)
	for _, name := range profiles {
		r.Handle("/"+name, pprof.Handler(name))
	}
	return r
}
