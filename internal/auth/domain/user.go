package domain

import "time"

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // Never return password in JSON
	Birthday string `json:"birthday"`
	Parrot   string `json:"parrot"`

	CreatedAt time.Time `json:"created_at"`
}
