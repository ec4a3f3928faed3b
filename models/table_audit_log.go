package models

import "time"

// Aksi audit log meja
const (
	TableActionCreated       = "created"
	TableActionUpdated       = "updated"
	TableActionDeleted       = "deleted"
	TableActionStatusChanged = "status_changed"
	TableActionReserved      = "reserved"
	TableActionFreed         = "freed"
)

// TableAuditLog adalah catatan append-only untuk setiap mutasi meja.
// Tidak pernah di-update atau dihapus setelah dibuat.
type TableAuditLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TableID        uint      `gorm:"not null;index" json:"table_id"`
	CompanyID      uint      `gorm:"not null;index" json:"company_id"`
	Action         string    `gorm:"type:varchar(20);not null" json:"action"`
	PreviousStatus *string   `gorm:"type:varchar(20)" json:"previous_status,omitempty"`
	NewStatus      *string   `gorm:"type:varchar(20)" json:"new_status,omitempty"`
	UserID         uint      `gorm:"not null" json:"user_id"`
	UserRole       string    `gorm:"type:varchar(20);not null" json:"user_role"`
	Details        string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
