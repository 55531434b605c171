package models

import "time"

// Cadastro de cliente sem login, indexado pelo telefone normalizado.
type Customer struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Note      string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
