package models

import "time"

// CartItem is one menu item sitting in a user's cart. Price and name are
// snapshots taken at add time. The owner email never changes; the row is
// removed either by an explicit delete or by settlement of a payment that
// covers it.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"index;not null"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
