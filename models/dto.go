package models

type SignupRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Location     string `json:"location"`
	LocationType string `json:"locationType"`
	Age          *int   `json:"age"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateMenuItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"`
	Available   *bool    `json:"available"`
}

// PlaceOrderRequest deliberately carries no total: the total is always
// recomputed server-side from the line items.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest uses a pointer price so a missing price can be told
// apart from an explicit zero. Quantity is tolerated when absent or
// below one; the service clamps it up to one.
type OrderItemRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity int      `json:"quantity"`
}
