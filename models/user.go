package models

import (
	"gorm.io/gorm"
)

// User represents a customer or admin account.
type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	// This field is for receiving the password during registration/login,
	// but it is NEVER saved to the database.
	Password string `json:"password,omitempty" gorm:"-"`

	Phone     string `json:"phone" gorm:"not null"`
	IsAdmin   bool   `json:"isAdmin" gorm:"default:false"`
	Street    string `json:"street" gorm:"default:''"`
	Apartment string `json:"apartment" gorm:"default:''"`
	Zip       string `json:"zip" gorm:"default:''"`
	City      string `json:"city" gorm:"default:''"`
	Country   string `json:"country" gorm:"default:''"`
}

// UserUpdate lists the fields a PUT /users/:id may change. Fields are
// pointers so an omitted field keeps its stored value; only the fields the
// request actually carries are applied. PasswordHash is set by the handler
// after re-hashing, never taken from the request body.
type UserUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Phone     *string `json:"phone"`
	IsAdmin   *bool   `json:"isAdmin"`
	Street    *string `json:"street"`
	Apartment *string `json:"apartment"`
	Zip       *string `json:"zip"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
}
