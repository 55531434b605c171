package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/validators"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservations (read)
// --------------------------------------------------

func (r *ReservationGormRepository) ListAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	var all []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Reservations (write)
// --------------------------------------------------

// CreateChecked performs the check-then-insert as one transaction. Row
// locks alone cannot close the race for an empty slot (there is no row to
// lock, so two concurrent scans both see it free), so writes are
// serialized per pitch with a transaction-scoped advisory lock before the
// scan. The lock covers the whole pitch, not pitch+date: a subscription
// anchored on any date can occupy slots on every later same-weekday date.
// The timeline is then resolved in-tx, so the check also covers virtual
// occurrences.
func (r *ReservationGormRepository) CreateChecked(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			res.PitchID,
		).Error; err != nil {
			return err
		}

		var relevant []models.Reservation
		if err := tx.
			Where(
				"pitch_id = ? AND (date = ? OR match_type = ?)",
				res.PitchID, res.Date, models.MatchTypeSubscription,
			).
			Find(&relevant).Error; err != nil {
			return err
		}

		view := domain.BuildDayView(relevant, res.PitchID, res.Date)
		if domain.WouldConflict(view.Timeline, res.StartTime, res.EndTime) {
			return domain.ErrConflict
		}

		return tx.Create(res).Error
	})
}

// AppendException adds date to a subscription's exception list with a
// check-before-append under a row lock, so duplicate invocations are
// harmless and the list only ever grows.
func (r *ReservationGormRepository) AppendException(
	ctx context.Context,
	id string,
	date string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var res models.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if res.HasException(date) {
			return nil
		}

		res.RecurrenceExceptions = append(res.RecurrenceExceptions, date)
		return tx.Model(&res).
			Update("recurrence_exceptions", res.RecurrenceExceptions).Error
	})
}

func (r *ReservationGormRepository) SetNoShow(
	ctx context.Context,
	id string,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("no_show", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id string,
) error {

	result := r.db.WithContext(ctx).
		Delete(&models.Reservation{}, "id = ?", id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Collaborators
// --------------------------------------------------

func (r *ReservationGormRepository) IsBlacklisted(
	ctx context.Context,
	phone string,
) (bool, error) {

	p := validators.NormalizePhone(phone)
	if p == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlacklistEntry{}).
		Where("phone = ?", p).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertCustomer keeps the existing record's fields when the incoming
// values are blank, so a sparse booking never erases a filled profile.
func (r *ReservationGormRepository) UpsertCustomer(
	ctx context.Context,
	phone string,
	firstName string,
	lastName string,
	note string,
) error {

	p := validators.NormalizePhone(phone)
	if p == "" {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var customer models.Customer
		err := tx.Where("phone = ?", p).First(&customer).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = models.Customer{
				ID:        newID(),
				Phone:     p,
				FirstName: firstName,
				LastName:  lastName,
				Note:      note,
			}
			return tx.Create(&customer).Error
		}
		if err != nil {
			return err
		}

		if firstName != "" {
			customer.FirstName = firstName
		}
		if lastName != "" {
			customer.LastName = lastName
		}
		if note != "" {
			customer.Note = note
		}
		return tx.Save(&customer).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
