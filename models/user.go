package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
