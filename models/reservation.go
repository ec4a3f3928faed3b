package models

import "time"

// Status reservasi
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusExpired   = "expired"
)

type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	TableID      *uint     `gorm:"index" json:"table_id,omitempty"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	Date         string    `gorm:"type:varchar(10);not null" json:"date"` // 2006-01-02
	Time         string    `gorm:"type:varchar(5);not null" json:"time"`  // 15:04
	PartySize    int       `gorm:"not null;default:1" json:"party_size"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
