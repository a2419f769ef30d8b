package request

type CreateBookingRequest struct {
	Date   string  `json:"date" validate:"required"`          // YYYY-MM-DD
	Time   string  `json:"time" validate:"required"`          // 12-hour display, e.g. "02:00 PM"
	Guests int     `json:"guests" validate:"required,gte=1,lte=8"`
	Name   string  `json:"name" validate:"required,min=2,max=100"`
	Email  string  `json:"email" validate:"required,email"`
	Phone  string  `json:"phone" validate:"required,min=10,max=20"`
	Notes  *string `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
