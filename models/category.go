package models

import (
	"gorm.io/gorm"
)

// Category groups products. Products hold a weak reference to it.
type Category struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryUpdate lists the fields a PUT /categories/:id may change. Fields
// are pointers so an omitted field keeps its stored value.
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}
