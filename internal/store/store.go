// Package store holds the process-local collections backing the dish and
// order resources. Both collections keep insertion order. Every operation
// takes the store mutex so a single request's mutation is atomic even when
// the server handles requests concurrently.
package store

import (
	"sync"

	"github.com/google/uuid"

	"dinette/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	dishes []domain.Dish
	orders []domain.Order
}

func New() *Store {
	return &Store{}
}

// NextID returns a fresh unique id for a created entity.
func (s *Store) NextID() string {
	return uuid.NewString()
}

func (s *Store) Dishes() []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

func (s *Store) Dish(id string) (domain.Dish, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Dish{}, false
}

func (s *Store) AddDish(d domain.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = append(s.dishes, d)
}

// UpdateDish replaces the mutable fields of the dish with the given id. The
// stored id and the record's position in the collection are preserved.
func (s *Store) UpdateDish(id string, d domain.Dish) (domain.Dish, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dishes {
		if s.dishes[i].ID == id {
			d.ID = id
			s.dishes[i] = d
			return s.dishes[i], true
		}
	}
	return domain.Dish{}, false
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) AddOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// UpdateOrder replaces the mutable fields of the order with the given id,
// preserving the stored id and position.
func (s *Store) UpdateOrder(id string, o domain.Order) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o.ID = id
			s.orders[i] = o
			return s.orders[i], true
		}
	}
	return domain.Order{}, false
}

func (s *Store) RemoveOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}
