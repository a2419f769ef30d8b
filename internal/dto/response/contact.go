package response

import (
	"time"

	"coffee-booking/internal/data/entity"
)

type ContactResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Message   string               `json:"message"`
	Status    entity.ContactStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func ContactToResponse(contact *entity.ContactSubmission) ContactResponse {
	return ContactResponse{
		ID:        contact.ID.String(),
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		Status:    contact.Status,
		CreatedAt: contact.CreatedAt,
	}
}
