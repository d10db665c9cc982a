package domain

const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

// Statuses lists the legal order statuses in lifecycle order.
var Statuses = []string{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if status == s {
			return true
		}
	}
	return false
}

// OrderedDish is a snapshot of a dish at order time plus the requested
// quantity. It is embedded by value, not a reference into the dish collection.
type OrderedDish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID           string        `json:"id"`
	DeliverTo    string        `json:"deliverTo"`
	MobileNumber string        `json:"mobileNumber"`
	Status       string        `json:"status"`
	Dishes       []OrderedDish `json:"dishes"`
}

// Deletable reports whether the order may be removed. Only orders still
// pending are eligible.
func (o Order) Deletable() bool {
	return o.Status == StatusPending
}

// Frozen reports whether the order can no longer be changed.
func (o Order) Frozen() bool {
	return o.Status == StatusDelivered
}
