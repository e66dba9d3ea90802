package model

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Prefecture  string    `gorm:"index;not null" json:"prefecture"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Club) TableName() string { return "clubs" }
