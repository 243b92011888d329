package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gnuletik/datocms-client-go/internal/web/middleware"
	"github.com/gnuletik/datocms-client-go/internal/web/response"
)

// Router wraps chi and records routes for introspection
type Router struct {
	mux    chi.Router
	routes []RouteInfo
}

// RouteInfo provides metadata about a route for introspection
type RouteInfo struct {
	Method  string   `json:"method"`
	Pattern string   `json:"pattern"`
	Name    string   `json:"name"`
	Query   []string `json:"query,omitempty"`
}

// String formats the route as "METHOD /pattern"
func (ri RouteInfo) String() string {
	if len(ri.Query) == 0 {
		return ri.Method + " " + ri.Pattern
	}
	return fmt.Sprintf("%s %s?%s", ri.Method, ri.Pattern, strings.Join(ri.Query, "&"))
}

// Route is returned by the registration methods to attach metadata
type Route struct {
	router *Router
	index  int
}

// NewRouter creates a router whose 404 and 405 responses are JSON:API errors
func NewRouter() *Router {
	mux := chi.NewRouter()
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RenderNotFound(w, fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.NewHTTPError(http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path)).Render(w)
	})

	return &Router{mux: mux}
}

// ServeHTTP implements http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Use adds middleware. It must be called before any route is registered.
func (r *Router) Use(middlewares ...middleware.Middleware) {
	for _, m := range middlewares {
		r.mux.Use(m)
	}
}

// Get registers a GET route
func (r *Router) Get(pattern string, handler http.Handler) *Route {
	return r.addRoute(http.MethodGet, pattern, handler)
}

// Post registers a POST route
func (r *Router) Post(pattern string, handler http.Handler) *Route {
	return r.addRoute(http.MethodPost, pattern, handler)
}

func (r *Router) addRoute(method, pattern string, handler http.Handler) *Route {
	r.mux.Method(method, pattern, handler)
	r.routes = append(r.routes, RouteInfo{Method: method, Pattern: pattern})
	return &Route{router: r, index: len(r.routes) - 1}
}

// Mount attaches a sub-router under pattern
func (r *Router) Mount(pattern string, handler http.Handler) *Route {
	r.mux.Mount(pattern, handler)
	r.routes = append(r.routes, RouteInfo{Method: "*", Pattern: pattern + "/*"})
	return &Route{router: r, index: len(r.routes) - 1}
}

// Named sets a name for the route
func (route *Route) Named(name string) *Route {
	route.router.routes[route.index].Name = name
	return route
}

// WithQuery documents the query parameters the route reads
func (route *Route) WithQuery(params ...string) *Route {
	info := &route.router.routes[route.index]
	info.Query = append(info.Query, params...)
	return route
}

// Routes returns the registered routes in registration order
func (r *Router) Routes() []RouteInfo {
	out := make([]RouteInfo, len(r.routes))
	copy(out, r.routes)
	return out
}
