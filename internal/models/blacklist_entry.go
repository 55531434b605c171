package models

import "time"

type BlacklistEntry struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:200" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`
	Note  string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
