package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/dto/response"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req *request.CreateContactRequest) (*response.ContactResponse, error)

	// Admin endpoints
	GetAllContacts(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error)
	GetContactByID(ctx context.Context, contactID string) (*response.ContactResponse, error)
	UpdateStatus(ctx context.Context, contactID string, req *request.UpdateContactStatusRequest) (*response.ContactResponse, error)
}

type contactService struct {
	contacts repository.ContactRepository
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewContactService(contacts repository.ContactRepository, notifier realtime.Notifier, log *zap.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		notifier: notifier,
		log:      log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *request.CreateContactRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact submission validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	contact := &entity.ContactSubmission{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  entity.ContactStatusPending,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}

	s.log.Info("Contact message received", zap.String("contact_id", contact.ID.String()))
	s.publish(ctx, realtime.EventInsert, contact.ID.String())

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) GetAllContacts(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error) {
	var statusFilter *entity.ContactStatus
	if status != "" {
		filter := entity.ContactStatus(status)
		switch filter {
		case entity.ContactStatusPending, entity.ContactStatusInProgress, entity.ContactStatusCompleted:
			statusFilter = &filter
		default:
			return nil, fmt.Errorf("invalid contact status %s", status)
		}
	}

	contacts, err := s.contacts.FindAll(ctx, statusFilter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}

	total, err := s.contacts.Count(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("count contact submissions: %w", err)
	}

	items := make([]response.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, response.ContactToResponse(contact))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*response.ContactResponse, error) {
	contact, err := s.findContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, contactID string, req *request.UpdateContactStatusRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update contact status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	contact, err := s.findContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	status := entity.ContactStatus(req.Status)
	if err := s.contacts.UpdateStatus(ctx, contact.ID, status); err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	contact.Status = status

	s.log.Info("Contact status changed",
		zap.String("contact_id", contactID),
		zap.String("status", req.Status),
	)
	s.publish(ctx, realtime.EventUpdate, contactID)

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) findContact(ctx context.Context, contactID string) (*entity.ContactSubmission, error) {
	contactUUID, err := utils.ParseUUID(contactID)
	if err != nil {
		return nil, fmt.Errorf("invalid contact ID format %s: %w", contactID, err)
	}

	contact, err := s.contacts.FindByID(ctx, contactUUID)
	if err != nil {
		return nil, fmt.Errorf("find contact submission: %w", err)
	}
	if contact == nil {
		return nil, fmt.Errorf("contact submission %s not found", contactID)
	}

	return contact, nil
}

func (s *contactService) publish(ctx context.Context, eventType realtime.EventType, id string) {
	event := realtime.Event{
		Table: "contact_submissions",
		Type:  eventType,
		ID:    id,
		At:    time.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish contact change", zap.Error(err), zap.String("id", id))
	}
}
