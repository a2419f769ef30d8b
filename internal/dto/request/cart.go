package request

type AddCartItemRequest struct {
	ID          int     `json:"id" validate:"required,min=1"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
