package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// Actor adalah identitas yang melakukan mutasi, dicatat di setiap audit log.
type Actor struct {
	UserID uint
	Role   string
}

// SystemActor dipakai oleh job background (sweeper, sync).
var SystemActor = Actor{UserID: 0, Role: models.RoleSystem}

// TableService memegang state machine meja. Setiap transisi yang diterima
// berjalan dalam satu transaksi: update baris meja dengan cek version
// (optimistic lock) plus tepat satu baris TableAuditLog. Guard yang gagal
// mengembalikan ConflictError dan tidak menulis apa pun.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

type CreateTableInput struct {
	Number   string `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
	Zone     string `json:"zone"`
}

type UpdateTableInput struct {
	Number   *string `json:"number"`
	Capacity *int    `json:"capacity"`
	Zone     *string `json:"zone"`
}

// Create membuat meja baru dengan status available dan mencatat audit "created".
// Number harus unik di antara meja aktif milik company yang sama.
func (s *TableService) Create(companyID uint, input CreateTableInput, actor Actor) (*models.Table, error) {
	if input.Number == "" {
		return nil, utils.NewValidationError("table number is required")
	}
	if input.Capacity <= 0 {
		return nil, utils.NewValidationError("table capacity must be a positive number")
	}

	var table models.Table
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Table{}).
			Where("company_id = ? AND number = ? AND is_active = ?", companyID, input.Number, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.NewConflictError("table number %s already exists", input.Number)
		}

		table = models.Table{
			CompanyID: companyID,
			Number:    input.Number,
			Capacity:  input.Capacity,
			Zone:      input.Zone,
			Status:    models.TableStatusAvailable,
			IsActive:  true,
		}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}

		return tx.Create(&models.TableAuditLog{
			TableID:   table.ID,
			CompanyID: companyID,
			Action:    models.TableActionCreated,
			UserID:    actor.UserID,
			UserRole:  actor.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// ListByCompany mengembalikan semua meja aktif milik satu company.
// Company tanpa meja mengembalikan slice kosong, bukan error.
func (s *TableService) ListByCompany(companyID uint) ([]models.Table, error) {
	tables := make([]models.Table, 0)
	err := s.db.Where("company_id = ? AND is_active = ?", companyID, true).
		Order("number asc").Find(&tables).Error
	return tables, err
}

func (s *TableService) Get(companyID, tableID uint) (*models.Table, error) {
	var table models.Table
	err := s.db.Where("company_id = ?", companyID).First(&table, tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("table %d not found", tableID)
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// Update mengubah field non-status (number/capacity/zone) dan mencatat audit
// "updated" tanpa previous/new status.
func (s *TableService) Update(companyID, tableID uint, input UpdateTableInput, actor Actor) (*models.Table, error) {
	return s.mutate(companyID, tableID, actor, func(tx *gorm.DB, t *models.Table) (string, string, error) {
		if input.Number != nil {
			if *input.Number == "" {
				return "", "", utils.NewValidationError("table number is required")
			}
			var count int64
			if err := tx.Model(&models.Table{}).
				Where("company_id = ? AND number = ? AND is_active = ? AND id <> ?", companyID, *input.Number, true, t.ID).
				Count(&count).Error; err != nil {
				return "", "", err
			}
			if count > 0 {
				return "", "", utils.NewConflictError("table number %s already exists", *input.Number)
			}
			t.Number = *input.Number
		}
		if input.Capacity != nil {
			if *input.Capacity <= 0 {
				return "", "", utils.NewValidationError("table capacity must be a positive number")
			}
			t.Capacity = *input.Capacity
		}
		if input.Zone != nil {
			t.Zone = *input.Zone
		}
		return models.TableActionUpdated, "", nil
	})
}

// AssignOrder -> available ke occupied saat order baru masuk ke meja.
func (s *TableService) AssignOrder(companyID, tableID, orderID uint, actor Actor) (*models.Table, error) {
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		if t.Status != models.TableStatusAvailable {
			return "", "", utils.NewConflictError("table %s is %s, cannot assign an order", t.Number, t.Status)
		}
		if t.CurrentOrderID != nil {
			return "", "", utils.NewConflictError("table %s already has an open order", t.Number)
		}
		t.Status = models.TableStatusOccupied
		t.CurrentOrderID = &orderID
		return models.TableActionStatusChanged, fmt.Sprintf("order %d assigned", orderID), nil
	})
}

// FreeTable mengembalikan meja occupied/reserved ke available.
// Untuk meja occupied, closingOrderID wajib cocok dengan CurrentOrderID.
func (s *TableService) FreeTable(companyID, tableID uint, closingOrderID *uint, actor Actor) (*models.Table, error) {
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		switch t.Status {
		case models.TableStatusOccupied:
			if closingOrderID == nil || t.CurrentOrderID == nil || *t.CurrentOrderID != *closingOrderID {
				return "", "", utils.NewConflictError("closing order does not match the current order of table %s", t.Number)
			}
			t.CurrentOrderID = nil
		case models.TableStatusReserved:
			t.ReservationDate = nil
			t.ReservationTime = nil
		default:
			return "", "", utils.NewConflictError("table %s is %s, nothing to free", t.Number, t.Status)
		}
		t.Status = models.TableStatusAvailable
		return models.TableActionFreed, "", nil
	})
}

// Reserve -> available ke reserved. Tanggal+jam harus valid dan di masa depan.
func (s *TableService) Reserve(companyID, tableID uint, date, timeOfDay string, actor Actor) (*models.Table, error) {
	at, err := parseReservationAt(date, timeOfDay)
	if err != nil {
		return nil, err
	}
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		if t.Status != models.TableStatusAvailable {
			return "", "", utils.NewConflictError("table %s is %s, cannot be reserved", t.Number, t.Status)
		}
		if !at.After(time.Now()) {
			return "", "", utils.NewConflictError("reservation must be in the future")
		}
		t.Status = models.TableStatusReserved
		t.ReservationDate = &date
		t.ReservationTime = &timeOfDay
		return models.TableActionReserved, fmt.Sprintf("reserved for %s %s", date, timeOfDay), nil
	})
}

// MarkOutOfService menonaktifkan meja. Hanya admin. Meja dengan order
// terbuka ditolak: ordernya harus ditutup/dibatalkan dulu, karena close dan
// cancel membebaskan meja lewat FreeTable yang mensyaratkan status occupied.
// Reservasi yang menempel dilepas.
func (s *TableService) MarkOutOfService(companyID, tableID uint, actor Actor) (*models.Table, error) {
	if !isAdmin(actor) {
		return nil, utils.NewConflictError("admin role required to mark a table out of service")
	}
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		if t.Status == models.TableStatusOutOfService {
			return "", "", utils.NewConflictError("table %s is already out of service", t.Number)
		}
		if t.CurrentOrderID != nil {
			return "", "", utils.NewConflictError("table %s has an open order and cannot be taken out of service", t.Number)
		}
		t.Status = models.TableStatusOutOfService
		t.ReservationDate = nil
		t.ReservationTime = nil
		return models.TableActionStatusChanged, "marked out of service", nil
	})
}

// Restore -> out_of_service kembali ke available. Hanya admin.
func (s *TableService) Restore(companyID, tableID uint, actor Actor) (*models.Table, error) {
	if !isAdmin(actor) {
		return nil, utils.NewConflictError("admin role required to restore a table")
	}
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		if t.Status != models.TableStatusOutOfService {
			return "", "", utils.NewConflictError("table %s is not out of service", t.Number)
		}
		t.Status = models.TableStatusAvailable
		return models.TableActionStatusChanged, "restored to service", nil
	})
}

// SoftDelete menandai meja tidak aktif tanpa menghapus barisnya, sehingga
// audit log tetap merujuk ke meja yang valid.
func (s *TableService) SoftDelete(companyID, tableID uint, actor Actor) (*models.Table, error) {
	return s.mutate(companyID, tableID, actor, func(_ *gorm.DB, t *models.Table) (string, string, error) {
		if t.CurrentOrderID != nil {
			return "", "", utils.NewConflictError("table %s has an open order and cannot be deleted", t.Number)
		}
		now := time.Now()
		t.IsActive = false
		t.DeletedAt = &now
		return models.TableActionDeleted, "", nil
	})
}

// Logs mengembalikan seluruh audit trail sebuah meja, urut dari yang terlama.
func (s *TableService) Logs(companyID, tableID uint) ([]models.TableAuditLog, error) {
	var table models.Table
	err := s.db.Where("company_id = ?", companyID).First(&table, tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("table %d not found", tableID)
	}
	if err != nil {
		return nil, err
	}

	logs := make([]models.TableAuditLog, 0)
	err = s.db.Where("table_id = ?", tableID).Order("id asc").Find(&logs).Error
	return logs, err
}

// ReleaseExpiredReservations membebaskan semua meja reserved yang waktunya
// sudah lewat dan menandai baris reservasinya expired, supaya listing tidak
// menampilkan reservasi confirmed untuk meja yang sudah available.
// Dipanggil periodik oleh sweeper dengan SystemActor.
func (s *TableService) ReleaseExpiredReservations(now time.Time) (int, error) {
	var reserved []models.Table
	if err := s.db.Where("status = ? AND is_active = ?", models.TableStatusReserved, true).
		Find(&reserved).Error; err != nil {
		return 0, err
	}

	freed := 0
	for _, t := range reserved {
		if t.ReservationDate == nil || t.ReservationTime == nil {
			continue
		}
		date, timeOfDay := *t.ReservationDate, *t.ReservationTime
		at, err := parseReservationAt(date, timeOfDay)
		if err != nil || at.After(now) {
			continue
		}
		if _, err := s.FreeTable(t.CompanyID, t.ID, nil, SystemActor); err != nil {
			utils.ErrorLogger.Printf("Failed to release expired reservation on table %d: %v", t.ID, err)
			continue
		}
		if err := s.db.Model(&models.Reservation{}).
			Where("company_id = ? AND table_id = ? AND status = ? AND date = ? AND time = ?",
				t.CompanyID, t.ID, models.ReservationStatusConfirmed, date, timeOfDay).
			Update("status", models.ReservationStatusExpired).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to expire reservation rows for table %d: %v", t.ID, err)
		}
		freed++
	}
	return freed, nil
}

// mutate menjalankan satu transisi: load meja, terapkan guard+perubahan,
// tulis dengan cek version, lalu append satu audit log. Semua dalam satu
// transaksi; apply menerima handle transaksi yang sama untuk query tambahan
// (misal cek keunikan nomor). apply mengembalikan action audit; untuk action
// status_changed, reserved, dan freed, previous/new status ikut dicatat.
func (s *TableService) mutate(companyID, tableID uint, actor Actor, apply func(tx *gorm.DB, t *models.Table) (string, string, error)) (*models.Table, error) {
	var result models.Table
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		err := tx.Where("company_id = ? AND is_active = ?", companyID, true).First(&table, tableID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("table %d not found", tableID)
		}
		if err != nil {
			return err
		}

		previousStatus := table.Status
		action, details, err := apply(tx, &table)
		if err != nil {
			return err
		}

		version := table.Version
		res := tx.Model(&models.Table{}).
			Where("id = ? AND version = ?", table.ID, version).
			Updates(map[string]interface{}{
				"number":           table.Number,
				"capacity":         table.Capacity,
				"zone":             table.Zone,
				"status":           table.Status,
				"is_active":        table.IsActive,
				"current_order_id": table.CurrentOrderID,
				"reservation_date": table.ReservationDate,
				"reservation_time": table.ReservationTime,
				"deleted_at":       table.DeletedAt,
				"version":          version + 1,
				"updated_at":       time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewConflictError("table %d was modified concurrently, please retry", table.ID)
		}
		table.Version = version + 1

		entry := models.TableAuditLog{
			TableID:   table.ID,
			CompanyID: table.CompanyID,
			Action:    action,
			UserID:    actor.UserID,
			UserRole:  actor.Role,
			Details:   details,
		}
		switch action {
		case models.TableActionStatusChanged, models.TableActionReserved, models.TableActionFreed:
			newStatus := table.Status
			entry.PreviousStatus = &previousStatus
			entry.NewStatus = &newStatus
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		result = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func parseReservationAt(date, timeOfDay string) (time.Time, error) {
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, utils.NewValidationError("reservation date/time must be in YYYY-MM-DD and HH:MM format")
	}
	return at, nil
}

func isAdmin(actor Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleSuperadmin
}
