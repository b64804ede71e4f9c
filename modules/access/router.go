// Package access exposes an authz engine as a small HTTP decision
// endpoint, for callers that cannot link the engine in-process
// (frontends, sidecars, other services).
//
// Mount it on any chi router:
//
//	engine := authz.New()
//	// ... register roles and policies ...
//
//	r := chi.NewRouter()
//	r.Mount("/access", access.Router(engine))
//
// The module exposes a single operation:
//
//	POST /check
//	{"subject": {...}, "permission": "post:edit", "context": {...}}
//
// responding with the engine's Authorization verdict as JSON. Denials are
// regular 200 responses carrying allowed=false and the denial reason;
// only malformed requests (400) and policy evaluation failures (500) use
// error status codes.
package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authzkit/pkg/authz"
)

// CheckRequest is the decision request payload.
type CheckRequest struct {
	Subject    authz.Subject `json:"subject"`
	Permission string        `json:"permission"`
	Context    authz.Context `json:"context,omitempty"`
}

// Router creates a chi router exposing the decision endpoint backed by
// the given Authorizer.
func Router(a authz.Authorizer) chi.Router {
	r := chi.NewRouter()
	r.Post("/check", checkHandler(a))
	return r
}

func checkHandler(a authz.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Permission == "" {
			writeError(w, http.StatusBadRequest, "permission is required")
			return
		}

		decision, err := a.Can(r.Context(), req.Subject, req.Permission, req.Context)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "policy evaluation failed")
			return
		}

		writeJSON(w, http.StatusOK, decision)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
