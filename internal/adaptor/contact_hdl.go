package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitMessage handles POST /api/contact (public)
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req request.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	contact, err := h.service.SubmitMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact message")
		return
	}

	utils.ResponseCreated(w, "success", contact)
}

// GetAllContacts handles GET /api/admin/contacts (admin only).
// Supports an optional ?status= filter.
func (h *ContactHandler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	status := r.URL.Query().Get("status")

	contacts, err := h.service.GetAllContacts(r.Context(), status, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list contact submissions")
		return
	}

	utils.ResponseSuccess(w, "success", contacts)
}

// GetContactByID handles GET /api/admin/contacts/{id} (admin only)
func (h *ContactHandler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")
	if contactID == "" {
		utils.ResponseBadRequest(w, "Contact ID is required", nil)
		return
	}

	contact, err := h.service.GetContactByID(r.Context(), contactID)
	if err != nil {
		handleServiceError(w, h.log, err, "get contact submission")
		return
	}

	utils.ResponseSuccess(w, "success", contact)
}

// UpdateStatus handles PUT /api/admin/contacts/{id}/status (admin only)
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")
	if contactID == "" {
		utils.ResponseBadRequest(w, "Contact ID is required", nil)
		return
	}

	var req request.UpdateContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	contact, err := h.service.UpdateStatus(r.Context(), contactID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update contact status")
		return
	}

	utils.ResponseSuccess(w, "success", contact)
}
