package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	VerificationPending  = "Pending"
	VerificationVerified = "Verified"
	VerificationRejected = "Rejected"
)

// AgentInfo is the denormalized agent profile embedded in every property.
// It is stamped from the creating user's record and never re-validated.
type AgentInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Property struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	Title              string         `json:"title"`
	Location           string         `json:"location"`
	Description        string         `json:"description"`
	Image              string         `json:"image"`
	Gallery            datatypes.JSON `json:"gallery"`
	Agent              AgentInfo      `gorm:"embedded;embeddedPrefix:agent_" json:"agent"`
	PriceRange         PriceRange     `gorm:"embedded;embeddedPrefix:price_" json:"priceRange"`
	VerificationStatus string         `gorm:"default:Pending" json:"verificationStatus"`
}
