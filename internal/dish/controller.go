package dish

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dinette/internal/domain"
	apperrors "dinette/internal/errors"
	"dinette/internal/pipeline"
)

type Controller struct {
	store  Store
	logger *zap.Logger
}

func NewController(store Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	c.writeData(w, http.StatusOK, c.store.Dishes())
}

func (c *Controller) Read(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	found, ok := c.store.Dish(dishID)
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Dish does not exist: %s.", dishID))
		return
	}

	c.writeData(w, http.StatusOK, found)
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	data, err := pipeline.Decode(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	req := &pipeline.Request{Data: data}
	if err := pipeline.Run(req, createChecks()...); err != nil {
		logger.Warn("dish create rejected", zap.String("reason", err.Error()))
		c.writeError(w, err)
		return
	}

	created := dishFromPayload(data)
	created.ID = c.store.NextID()
	c.store.AddDish(created)

	logger.Info("dish created", zap.String("dishId", created.ID))
	c.writeData(w, http.StatusCreated, created)
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")
	logger := c.logger.With(
		zap.String("traceId", uuid.New().String()),
		zap.String("dishId", dishID),
	)

	if _, ok := c.store.Dish(dishID); !ok {
		c.writeError(w, apperrors.NewNotFoundError("Dish does not exist: %s.", dishID))
		return
	}

	data, err := pipeline.Decode(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	req := &pipeline.Request{Data: data, RouteID: dishID}
	if err := pipeline.Run(req, updateChecks()...); err != nil {
		logger.Warn("dish update rejected", zap.String("reason", err.Error()))
		c.writeError(w, err)
		return
	}

	updated, ok := c.store.UpdateDish(dishID, dishFromPayload(data))
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Dish does not exist: %s.", dishID))
		return
	}

	logger.Info("dish updated")
	c.writeData(w, http.StatusOK, updated)
}

func dishFromPayload(data pipeline.Payload) domain.Dish {
	return domain.Dish{
		Name:        pipeline.String(data["name"]),
		Description: pipeline.String(data["description"]),
		Price:       pipeline.Int(data["price"]),
		ImageURL:    pipeline.String(data["image_url"]),
	}
}

func (c *Controller) writeData(w http.ResponseWriter, status int, data interface{}) {
	c.writeJSON(w, status, map[string]interface{}{"data": data})
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{"message": nf.Message})
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"message": ve.Message})
		return
	}
	c.logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "an unexpected error occurred"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response",
			zap.Error(apperrors.NewInternalError("encoding dish response", err)))
	}
}
