package request

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed"`
}
