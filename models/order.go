package models

import "time"

// Status order
const (
	OrderStatusOpen      = "open"
	OrderStatusServed    = "served"
	OrderStatusClosed    = "closed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CompanyID   uint        `gorm:"not null;index" json:"company_id"`
	TableID     uint        `gorm:"not null;index" json:"table_id"`
	Status      string      `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	ClosedAt    *time.Time  `json:"closed_at,omitempty"`
}
