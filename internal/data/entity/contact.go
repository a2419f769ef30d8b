package entity

type ContactStatus string

const (
	ContactStatusPending    ContactStatus = "pending"
	ContactStatusInProgress ContactStatus = "in-progress"
	ContactStatusCompleted  ContactStatus = "completed"
)

type ContactSubmission struct {
	Base
	Name    string        `db:"name"`
	Email   string        `db:"email"`
	Message string        `db:"message"`
	Status  ContactStatus `db:"status"`
}
