package handlers

import (
	"net/http"

	"github.com/gnuletik/datocms-client-go/internal/web/response"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// HealthResponse reports liveness and the loaded rule table
type HealthResponse struct {
	Status string   `json:"status"`
	Rules  []string `json:"rules"`
}

// Health reports that the server is up
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response.RenderJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Rules:  seo.RuleNames(),
	})
}
