package models

import "time"

// Status meja
const (
	TableStatusAvailable    = "available"
	TableStatusOccupied     = "occupied"
	TableStatusReserved     = "reserved"
	TableStatusOutOfService = "out_of_service"
)

type Table struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CompanyID       uint       `gorm:"not null;index" json:"company_id"`
	Number          string     `gorm:"type:varchar(50);not null" json:"number"`
	Capacity        int        `gorm:"not null" json:"capacity"`
	Zone            string     `gorm:"type:varchar(100)" json:"zone"`
	Status          string     `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CurrentOrderID  *uint      `gorm:"index" json:"current_order_id,omitempty"`
	ReservationDate *string    `gorm:"type:varchar(10)" json:"reservation_date,omitempty"`
	ReservationTime *string    `gorm:"type:varchar(5)" json:"reservation_time,omitempty"`
	Version         int        `gorm:"not null;default:0" json:"version"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}
