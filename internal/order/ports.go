package order

import "dinette/internal/domain"

// Store is the slice of the entity store the order module consumes.
type Store interface {
	NextID() string
	Orders() []domain.Order
	Order(id string) (domain.Order, bool)
	AddOrder(o domain.Order)
	UpdateOrder(id string, o domain.Order) (domain.Order, bool)
	RemoveOrder(id string) bool
}
