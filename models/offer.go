package models

import (
	"time"
)

const (
	OfferPending  = "Pending"
	OfferAccepted = "Accepted"
	OfferRejected = "Rejected"
	OfferBought   = "Bought"
)

type Offer struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PropertyID    uint      `gorm:"index" json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	Location      string    `json:"location"`
	BuyerEmail    string    `gorm:"index" json:"buyerEmail"`
	BuyerName     string    `json:"buyerName"`
	AgentEmail    string    `gorm:"index" json:"agentEmail"`
	OfferedPrice  float64   `json:"offeredPrice"`
	Status        string    `gorm:"default:Pending" json:"status"`
	TransactionID *string   `json:"transactionId"`
}
