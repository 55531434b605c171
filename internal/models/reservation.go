package models

import "time"

// Tipos de partida suportados pela agenda.
const (
	MatchTypeSingle       = "single"
	MatchTypeSubscription = "subscription"
	MatchTypeDaytime      = "daytime"
	MatchTypeCourse       = "course"
)

// Reservation is the only persisted scheduling entity. A subscription's
// weekly occurrences are never stored; they are projected on read by the
// schedule package.
type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PitchID   string `gorm:"size:36;index:idx_pitch_date" json:"pitch_id"`
	PitchName string `gorm:"size:100" json:"pitch_name"`

	// Anchor date (ISO). For a subscription this is the first occurrence.
	Date      string `gorm:"size:10;index:idx_pitch_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	MatchType string `gorm:"size:20;default:'single'" json:"match_type"`

	// Dates on which this subscription's projection is suppressed.
	// Append-only; present only when MatchType == subscription.
	RecurrenceExceptions []string `gorm:"serializer:json" json:"recurrence_exceptions,omitempty"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Note      string `gorm:"size:255" json:"note"`

	NoShow bool `json:"no_show"`

	CreatedBy string    `gorm:"size:100" json:"created_by"`
	Source    string    `gorm:"size:20" json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) IsSubscription() bool {
	return r.MatchType == MatchTypeSubscription
}

// HasException reports whether date is already on the exception list.
func (r *Reservation) HasException(date string) bool {
	for _, ex := range r.RecurrenceExceptions {
		if ex == date {
			return true
		}
	}
	return false
}
