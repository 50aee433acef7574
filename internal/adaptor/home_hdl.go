package adaptor

import (
	"net/http"

	"movies-api/pkg/utils"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET /
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	utils.ResponseText(w, http.StatusOK, "Hello World")
}

// Health handles GET /health
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseText(w, http.StatusOK, "OK")
}

// NotFound answers unknown routes with the JSON envelope
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "The requested resource could not be found")
}

// MethodNotAllowed answers known routes hit with an unsupported method
func (h *HomeHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "The "+r.Method+" method is not supported for this resource")
}
