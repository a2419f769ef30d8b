package usecase

import (
	"context"
	"testing"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/dto/request"
	"coffee-booking/pkg/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContactFixture(t *testing.T) (ContactService, *fakeContactRepo, *recordingNotifier) {
	t.Helper()
	contacts := newFakeContactRepo()
	notifier := &recordingNotifier{}
	return NewContactService(contacts, notifier, zap.NewNop()), contacts, notifier
}

func TestSubmitMessage(t *testing.T) {
	ctx := context.Background()
	service, contacts, notifier := newContactFixture(t)

	resp, err := service.SubmitMessage(ctx, &request.CreateContactRequest{
		Name:    "Dana Meyer",
		Email:   "dana@example.com",
		Message: "Do you host private events?",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ContactStatusPending, resp.Status)
	assert.Equal(t, "Dana Meyer", resp.Name)

	contactUUID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	stored, _ := contacts.FindByID(ctx, contactUUID)
	require.NotNil(t, stored)

	events := notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, "contact_submissions", events[0].Table)
	assert.Equal(t, realtime.EventInsert, events[0].Type)
}

func TestSubmitMessageRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	service, contacts, _ := newContactFixture(t)

	for name, req := range map[string]*request.CreateContactRequest{
		"missing name":    {Email: "dana@example.com", Message: "hi"},
		"bad email":       {Name: "Dana", Email: "not-an-email", Message: "hi"},
		"missing message": {Name: "Dana", Email: "dana@example.com"},
	} {
		_, err := service.SubmitMessage(ctx, req)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "validation failed", name)
	}

	assert.Empty(t, contacts.contacts)
}

func TestContactStatusFlow(t *testing.T) {
	ctx := context.Background()
	service, _, notifier := newContactFixture(t)

	resp, err := service.SubmitMessage(ctx, &request.CreateContactRequest{
		Name:    "Dana Meyer",
		Email:   "dana@example.com",
		Message: "Do you host private events?",
	})
	require.NoError(t, err)

	updated, err := service.UpdateStatus(ctx, resp.ID, &request.UpdateContactStatusRequest{Status: "in-progress"})
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusInProgress, updated.Status)

	updated, err = service.UpdateStatus(ctx, resp.ID, &request.UpdateContactStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusCompleted, updated.Status)

	_, err = service.UpdateStatus(ctx, resp.ID, &request.UpdateContactStatusRequest{Status: "resolved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	assert.Len(t, notifier.published(), 3)
}

func TestGetContactByID(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newContactFixture(t)

	submitted, err := service.SubmitMessage(ctx, &request.CreateContactRequest{
		Name:    "Dana Meyer",
		Email:   "dana@example.com",
		Message: "Do you host private events?",
	})
	require.NoError(t, err)

	found, err := service.GetContactByID(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, found.ID)
	assert.Equal(t, "Do you host private events?", found.Message)

	_, err = service.GetContactByID(ctx, uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = service.GetContactByID(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid contact ID format")
}

func TestGetAllContactsFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newContactFixture(t)

	first, err := service.SubmitMessage(ctx, &request.CreateContactRequest{
		Name: "Dana", Email: "dana@example.com", Message: "one",
	})
	require.NoError(t, err)
	_, err = service.SubmitMessage(ctx, &request.CreateContactRequest{
		Name: "Riley", Email: "riley@example.com", Message: "two",
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus(ctx, first.ID, &request.UpdateContactStatusRequest{Status: "completed"})
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	all, err := service.GetAllContacts(ctx, "", page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Pagination.Total)

	pending, err := service.GetAllContacts(ctx, "pending", page)
	require.NoError(t, err)
	require.Len(t, pending.Data, 1)
	assert.Equal(t, "Riley", pending.Data[0].Name)

	_, err = service.GetAllContacts(ctx, "spam", page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid contact status")
}
