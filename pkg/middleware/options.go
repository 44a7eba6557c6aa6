package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Options answers a bare OPTIONS request with 200 and an Allow header for
// any path the router serves. CORS preflights never reach it; unknown paths
// fall through to the router's 404.
func Options(routes chi.Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			allowed := allowedMethods(routes, r.URL.Path)
			if len(allowed) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Allow", strings.Join(append(allowed, http.MethodOptions), ", "))
			w.WriteHeader(http.StatusOK)
		})
	}
}

func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
