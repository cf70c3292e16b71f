package model

// Returns is a tax return: a price and an optional tax on top.
// Price is a pointer so a missing price is told apart from a zero one.
type Returns struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Tax   *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
}

// Total is price plus tax, or just the price when no tax was filed.
func (r Returns) Total() float64 {
	var total float64
	if r.Price != nil {
		total = *r.Price
	}
	if r.Tax != nil {
		total += *r.Tax
	}
	return total
}
