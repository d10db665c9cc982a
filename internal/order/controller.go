package order

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
	c.writeData(w, http.StatusOK, c.store.Orders())
}

func (c *Controller) Read(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	found, ok := c.store.Order(orderID)
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Order does not exist: %s.", orderID))
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
		logger.Warn("order create rejected", zap.String("reason", err.Error()))
		c.writeError(w, err)
		return
	}

	created := orderFromPayload(data)
	created.ID = c.store.NextID()
	c.store.AddOrder(created)

	logger.Info("order created",
		zap.String("orderId", created.ID),
		zap.String("status", created.Status),
	)
	c.writeData(w, http.StatusCreated, created)
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	logger := c.logger.With(
		zap.String("traceId", uuid.New().String()),
		zap.String("orderId", orderID),
	)

	stored, ok := c.store.Order(orderID)
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Order does not exist: %s.", orderID))
		return
	}

	data, err := pipeline.Decode(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	req := &pipeline.Request{Data: data, RouteID: orderID}
	if err := pipeline.Run(req, updateChecks(stored)...); err != nil {
		logger.Warn("order update rejected", zap.String("reason", err.Error()))
		c.writeError(w, err)
		return
	}

	updated, ok := c.store.UpdateOrder(orderID, orderFromPayload(data))
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Order does not exist: %s.", orderID))
		return
	}

	logger.Info("order updated", zap.String("status", updated.Status))
	c.writeData(w, http.StatusOK, updated)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	logger := c.logger.With(
		zap.String("traceId", uuid.New().String()),
		zap.String("orderId", orderID),
	)

	stored, ok := c.store.Order(orderID)
	if !ok {
		c.writeError(w, apperrors.NewNotFoundError("Order does not exist: %s.", orderID))
		return
	}

	if !stored.Deletable() {
		c.writeError(w, apperrors.NewValidationError("An order cannot be deleted unless it is pending"))
		return
	}

	c.store.RemoveOrder(orderID)
	logger.Info("order deleted")
	w.WriteHeader(http.StatusNoContent)
}

// orderFromPayload builds the order record from a validated payload. The
// dish line items are snapshots copied out of the request, not references
// into the dish collection. An order created without a status starts pending.
func orderFromPayload(data pipeline.Payload) domain.Order {
	items, _ := data["dishes"].([]interface{})
	dishes := make([]domain.OrderedDish, 0, len(items))
	for _, item := range items {
		line, _ := item.(map[string]interface{})
		dishes = append(dishes, domain.OrderedDish{
			ID:          pipeline.String(line["id"]),
			Name:        pipeline.String(line["name"]),
			Description: pipeline.String(line["description"]),
			Price:       pipeline.Int(line["price"]),
			ImageURL:    pipeline.String(line["image_url"]),
			Quantity:    pipeline.Int(line["quantity"]),
		})
	}

	status := pipeline.String(data["status"])
	if status == "" {
		status = domain.StatusPending
	}

	return domain.Order{
		DeliverTo:    pipeline.String(data["deliverTo"]),
		MobileNumber: pipeline.String(data["mobileNumber"]),
		Status:       status,
		Dishes:       dishes,
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
			zap.Error(apperrors.NewInternalError("encoding order response", err)))
	}
}
