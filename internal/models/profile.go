package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FullName     string         `json:"full_name" gorm:"not null"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Role         string         `json:"role" gorm:"default:'Customer'"` // Customer, Delivery, Admin
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleDelivery UserRole = "Delivery"
	RoleAdmin    UserRole = "Admin"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleCustomer, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}
