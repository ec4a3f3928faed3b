package models

import "time"

// Plan adalah konfigurasi subscription untuk landing page.
// Global, tidak di-scope per company; direkonsiliasi oleh PlanService.
type Plan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	Currency  string    `gorm:"type:varchar(10);not null;default:'EUR'" json:"currency"`
	Features  string    `gorm:"type:text" json:"features"` // JSON array
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
