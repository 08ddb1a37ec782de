package models

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAgent = "Agent"
	RoleAdmin = "Admin"
)

const (
	StatusActive = "Active"
	StatusFraud  = "Fraud"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Role      string    `gorm:"default:User" json:"role"`
	Status    string    `gorm:"default:Active" json:"status"`
}
