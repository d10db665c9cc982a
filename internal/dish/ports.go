package dish

import "dinette/internal/domain"

// Store is the slice of the entity store the dish module consumes.
type Store interface {
	NextID() string
	Dishes() []domain.Dish
	Dish(id string) (domain.Dish, bool)
	AddDish(d domain.Dish)
	UpdateDish(id string, d domain.Dish) (domain.Dish, bool)
}
