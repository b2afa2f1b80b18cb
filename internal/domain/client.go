package domain

import "time"

type Client struct {
	ID        int32     `json:"id"`
	RUT       string    `json:"rut"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
