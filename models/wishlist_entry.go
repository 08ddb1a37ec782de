package models

import (
	"time"
)

type WishlistEntry struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UserEmail  string    `gorm:"index" json:"userEmail"`
	PropertyID uint      `json:"propertyId"`
}
