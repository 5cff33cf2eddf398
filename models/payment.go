package models

import "time"

// Payment is an append-only ledger entry recorded once per settlement.
// It is never updated or rolled back: the row is the payer's proof of charge
// even if the follow-up cart cleanup does nothing.
type Payment struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Email     string        `json:"email" gorm:"index;not null"`
	Amount    float64       `json:"amount"`
	Reference string        `json:"reference" gorm:"uniqueIndex"`
	Items     []PaymentItem `json:"items,omitempty" gorm:"foreignKey:PaymentID"`
	CreatedAt time.Time     `json:"created_at"`
}

// PaymentItem records one purchase event: the cart entry a payment settled
// and the menu item that entry referenced. Duplicate menu items across a
// payment produce one row each, which is what the category breakdown counts.
type PaymentItem struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	PaymentID  uint `json:"payment_id" gorm:"index;not null"`
	CartItemID uint `json:"cart_item_id" gorm:"not null"`
	MenuItemID uint `json:"menu_item_id" gorm:"not null"`
}
