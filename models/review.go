package models

import (
	"time"
)

// Reviews are write-once: no update or delete surface exists.
type Review struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ReviewerEmail string    `gorm:"index" json:"reviewerEmail"`
	ReviewerName  string    `json:"reviewerName"`
	PropertyID    uint      `json:"propertyId"`
	Rating        int       `json:"rating"`
	Text          string    `json:"text"`
}
