package api

import "time"

type Extra struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Food is an orderable item as served by GET /foods/:id.
type Food struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
	FormattedPrice string  `json:"formattedPrice"`
	Category       string  `json:"category,omitempty"`
	Extras         []Extra `json:"extras"`
}

type OrderExtra struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
}

// OrderRequest carries the food fields without its id; the id travels as ProductID.
type OrderRequest struct {
	ProductID      uint         `json:"productId"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Price          float64      `json:"price"`
	ImageURL       string       `json:"image_url"`
	FormattedPrice string       `json:"formattedPrice"`
	Category       string       `json:"category,omitempty"`
	Quantity       int          `json:"quantity"`
	Extras         []OrderExtra `json:"extras"`
	Total          float64      `json:"total"`
}

type OrderReceipt struct {
	Code           string       `json:"code"`
	ProductID      uint         `json:"productId"`
	Name           string       `json:"name"`
	Price          float64      `json:"price"`
	Quantity       int          `json:"quantity"`
	Extras         []OrderExtra `json:"extras"`
	Subtotal       float64      `json:"subtotal"`
	ExtrasTotal    float64      `json:"extrasTotal"`
	Total          float64      `json:"total"`
	FormattedTotal string       `json:"formattedTotal"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
