package store

import "dinette/internal/domain"

// Seed loads the sample records served before any client has created
// anything. Ids are fixed so the seeded data is stable across restarts.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dishes = append(s.dishes, []domain.Dish{
		{
			ID:          "d351db2b49b69679504652ea1cf38241",
			Name:        "Dolcelatte gorgonzola fondue",
			Description: "Sweet and creamy, the essence of cheeses",
			Price:       905,
			ImageURL:    "https://images.pexels.com/photos/42267/pexels-photo-42267.jpeg",
		},
		{
			ID:          "90c3d873684bf381dfab29034b5bba73",
			Name:        "Falafel and tahini bagel",
			Description: "A warm bagel filled with falafel and tahini",
			Price:       6,
			ImageURL:    "https://images.pexels.com/photos/4560347/pexels-photo-4560347.jpeg",
		},
	}...)

	s.orders = append(s.orders, []domain.Order{
		{
			ID:           "f6069a542257054114138301947672ba",
			DeliverTo:    "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			MobileNumber: "(202) 456-1111",
			Status:       domain.StatusOutForDelivery,
			Dishes: []domain.OrderedDish{
				{
					ID:          "90c3d873684bf381dfab29034b5bba73",
					Name:        "Falafel and tahini bagel",
					Description: "A warm bagel filled with falafel and tahini",
					Price:       6,
					ImageURL:    "https://images.pexels.com/photos/4560347/pexels-photo-4560347.jpeg",
					Quantity:    1,
				},
			},
		},
		{
			ID:           "5a887d326e83d3c5bdcbee398ea32aff",
			DeliverTo:    "308 Negra Arroyo Lane, Albuquerque, NM",
			MobileNumber: "(505) 143-3369",
			Status:       domain.StatusPending,
			Dishes: []domain.OrderedDish{
				{
					ID:          "d351db2b49b69679504652ea1cf38241",
					Name:        "Dolcelatte gorgonzola fondue",
					Description: "Sweet and creamy, the essence of cheeses",
					Price:       905,
					ImageURL:    "https://images.pexels.com/photos/42267/pexels-photo-42267.jpeg",
					Quantity:    3,
				},
			},
		},
	}...)
}
