package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dinette/internal/dish"
	apperrors "dinette/internal/errors"
	"dinette/internal/order"
)

// NewRouter wires the resource controllers onto the HTTP surface. Each route
// group carries its own 405 responder so the Allow header reflects exactly
// the methods that group supports.
func NewRouter(dishes *dish.Controller, orders *order.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.NotFound(notFound(logger))

	r.Route("/dishes", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(logger, http.MethodGet, http.MethodPost))
		r.Get("/", dishes.List)
		r.Post("/", dishes.Create)

		r.Route("/{dishId}", func(r chi.Router) {
			r.MethodNotAllowed(methodNotAllowed(logger, http.MethodGet, http.MethodPut))
			r.Get("/", dishes.Read)
			r.Put("/", dishes.Update)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(logger, http.MethodGet, http.MethodPost))
		r.Get("/", orders.List)
		r.Post("/", orders.Create)

		r.Route("/{orderId}", func(r chi.Router) {
			r.MethodNotAllowed(methodNotAllowed(logger, http.MethodGet, http.MethodPut, http.MethodDelete))
			r.Get("/", orders.Read)
			r.Put("/", orders.Update)
			r.Delete("/", orders.Delete)
		})
	})

	return r
}

func notFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, logger, http.StatusNotFound, "Not found: "+r.URL.Path)
	}
}

func methodNotAllowed(logger *zap.Logger, allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeMessage(w, logger, http.StatusMethodNotAllowed, r.Method+" not allowed for "+r.URL.Path)
	}
}

func writeMessage(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		logger.Error("failed to encode response",
			zap.Error(apperrors.NewInternalError("encoding error response", err)))
	}
}
