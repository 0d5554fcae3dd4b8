package models

import "time"

const (
	LocationTypeHome  = "home"
	LocationTypeWork  = "work"
	LocationTypeOther = "other"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LocationType string    `json:"location_type"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidLocationType reports whether t is one of the accepted enum values.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeHome, LocationTypeWork, LocationTypeOther:
		return true
	}
	return false
}
