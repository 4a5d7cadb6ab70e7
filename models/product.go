package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product is a catalog entry. The category reference is validated at create
// time but not enforced by the storage layer.
type Product struct {
	gorm.Model
	Name             string         `json:"name" gorm:"not null"`
	Descriptions     string         `json:"descriptions" gorm:"not null"`
	RichDescriptions string         `json:"richDescriptions" gorm:"default:''"`
	Image            string         `json:"image" gorm:"default:''"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Brand            string         `json:"brand" gorm:"default:''"`
	Price            float64        `json:"price" gorm:"default:0"`
	CategoryID       uint           `json:"category" gorm:"index;not null"`
	Category         *Category      `json:"categoryDetail,omitempty" gorm:"foreignKey:CategoryID"`
	CountInStock     int            `json:"countInStock" gorm:"not null"`
	Rating           float64        `json:"rating" gorm:"default:0"`
	NumReviews       int            `json:"numReviews" gorm:"default:0"`
	IsFeatured       bool           `json:"isFeatured" gorm:"default:false"`
}

// ProductUpdate lists the fields a PUT /products/:id may change. Fields are
// pointers so an omitted field keeps its stored value. The image and gallery
// fields are only touched by the upload endpoints.
type ProductUpdate struct {
	Name             *string  `json:"name"`
	Descriptions     *string  `json:"descriptions"`
	RichDescriptions *string  `json:"richDescriptions"`
	Brand            *string  `json:"brand"`
	Price            *float64 `json:"price"`
	CategoryID       *uint    `json:"category"`
	CountInStock     *int     `json:"countInStock"`
	Rating           *float64 `json:"rating"`
	NumReviews       *int     `json:"numReviews"`
	IsFeatured       *bool    `json:"isFeatured"`
}
