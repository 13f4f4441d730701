package models

import "time"

type SupportRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference string    `json:"reference" gorm:"unique;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"default:'Open'"` // Open, Resolved
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}

type SupportStatus string

const (
	SupportOpen     SupportStatus = "Open"
	SupportResolved SupportStatus = "Resolved"
)
