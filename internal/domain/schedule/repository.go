package schedule

import (
	"context"

	"github.com/agenasports/pitch-scheduler/internal/models"
)

type Repository interface {
	// -------- Reservations (read) --------
	ListAll(
		ctx context.Context,
	) ([]models.Reservation, error)

	GetReservation(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	// -------- Reservations (write) --------

	// CreateChecked re-validates overlap against the pitch's effective
	// timeline and inserts, as one transaction. Returns ErrConflict when
	// the slot is taken at the moment of the check.
	CreateChecked(
		ctx context.Context,
		r *models.Reservation,
	) error

	// AppendException adds date to the subscription's exception list.
	// Idempotent: a date already present is a no-op.
	AppendException(
		ctx context.Context,
		id string,
		date string,
	) error

	SetNoShow(
		ctx context.Context,
		id string,
	) error

	DeleteReservation(
		ctx context.Context,
		id string,
	) error

	// -------- Collaborators --------
	IsBlacklisted(
		ctx context.Context,
		phone string,
	) (bool, error)

	UpsertCustomer(
		ctx context.Context,
		phone string,
		firstName string,
		lastName string,
		note string,
	) error
}
