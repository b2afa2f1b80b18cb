package domain

import "time"

type AdminUser struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
