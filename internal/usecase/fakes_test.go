package usecase

import (
	"context"
	"sync"
	"time"

	"coffee-booking/internal/data/entity"
	"coffee-booking/pkg/realtime"

	"github.com/google/uuid"
)

// recordingNotifier collects published events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (n *recordingNotifier) Publish(ctx context.Context, event realtime.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) Subscribe(ctx context.Context, table string) (<-chan realtime.Event, func(), error) {
	ch := make(chan realtime.Event)
	return ch, func() { close(ch) }, nil
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) published() []realtime.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]realtime.Event, len(n.events))
	copy(out, n.events)
	return out
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	stored := f.users[user.ID]
	stored.Username = user.Username
	stored.FullName = user.FullName
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	f.users[userID].PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID uuid.UUID, role entity.UserRole) error {
	f.users[userID].Role = role
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	stored := *session
	f.sessions[session.Token.String()] = &stored
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if s, ok := f.sessions[token]; ok {
		now := s.CreatedAt.Add(time.Second)
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	for _, s := range f.sessions {
		if s.UserID == userID {
			now := s.CreatedAt.Add(time.Second)
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

type fakeResetRepo struct {
	resets map[string]*entity.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{resets: make(map[string]*entity.PasswordReset)}
}

func (f *fakeResetRepo) Create(ctx context.Context, reset *entity.PasswordReset) error {
	stored := *reset
	f.resets[reset.Token.String()] = &stored
	return nil
}

func (f *fakeResetRepo) FindValidToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	r, ok := f.resets[token]
	if !ok || r.UsedAt != nil {
		return nil, nil
	}
	return r, nil
}

func (f *fakeResetRepo) MarkUsed(ctx context.Context, token string) error {
	if r, ok := f.resets[token]; ok {
		now := r.CreatedAt.Add(time.Second)
		r.UsedAt = &now
	}
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByNames(ctx context.Context, names []string) ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range f.products {
		for _, name := range names {
			if p.Name == name {
				matched = append(matched, p)
			}
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*entity.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	orders, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(orders)), nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) Stats(ctx context.Context) (*entity.OrderStats, error) {
	stats := &entity.OrderStats{}
	for _, o := range f.orders {
		stats.Total++
		stats.Revenue += o.Total
		if o.Status == entity.OrderStatusPending {
			stats.Pending++
		}
	}
	return stats, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	f.orders[orderID].Status = status
	return nil
}

type fakeOrderItemRepo struct {
	items    []*entity.OrderItem
	batchErr error
}

func (f *fakeOrderItemRepo) CreateBatch(ctx context.Context, items []*entity.OrderItem) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderItemRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.bookings[bookingID].Status = status
	return nil
}

type fakeContactRepo struct {
	contacts map[uuid.UUID]*entity.ContactSubmission
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]*entity.ContactSubmission)}
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *entity.ContactSubmission) error {
	stored := *contact
	f.contacts[contact.ID] = &stored
	return nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error) {
	return f.contacts[id], nil
}

func (f *fakeContactRepo) FindAll(ctx context.Context, status *entity.ContactStatus, limit, offset int) ([]*entity.ContactSubmission, error) {
	var out []*entity.ContactSubmission
	for _, c := range f.contacts {
		if status == nil || c.Status == *status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Count(ctx context.Context, status *entity.ContactStatus) (int64, error) {
	contacts, _ := f.FindAll(ctx, status, 0, 0)
	return int64(len(contacts)), nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, contactID uuid.UUID, status entity.ContactStatus) error {
	f.contacts[contactID].Status = status
	return nil
}
