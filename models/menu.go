package models

import "time"

// MenuItem is the catalog entry customers order from.
// Only admins may create, update, or delete items.
type MenuItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Category  string    `json:"category"`
	Price     float64   `json:"price" gorm:"not null"`
	Image     string    `json:"image"`
	Recipe    string    `json:"recipe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
