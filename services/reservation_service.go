package services

import (
	"errors"
	"time"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// ReservationService memegang reservasi per company. Reservasi yang
// menunjuk ke meja juga mengubah status meja lewat TableService.
type ReservationService struct {
	db     *gorm.DB
	tables *TableService
}

func NewReservationService(db *gorm.DB, tables *TableService) *ReservationService {
	return &ReservationService{db: db, tables: tables}
}

type CreateReservationInput struct {
	TableID      *uint  `json:"table_id"`
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PartySize    int    `json:"party_size"`
}

func (s *ReservationService) ListByCompany(companyID uint) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)
	err := s.db.Where("company_id = ?", companyID).Order("date asc, time asc").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) Get(companyID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Where("company_id = ?", companyID).First(&reservation, reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("reservation %d not found", reservationID)
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Create membuat reservasi. Tanpa meja statusnya pending; dengan meja,
// mejanya langsung di-reserve dan reservasinya confirmed.
func (s *ReservationService) Create(companyID uint, input CreateReservationInput, actor Actor) (*models.Reservation, error) {
	at, err := parseReservationAt(input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if !at.After(time.Now()) {
		return nil, utils.NewValidationError("reservation must be in the future")
	}
	if input.PartySize <= 0 {
		input.PartySize = 1
	}

	status := models.ReservationStatusPending
	if input.TableID != nil {
		if _, err := s.tables.Reserve(companyID, *input.TableID, input.Date, input.Time, actor); err != nil {
			return nil, err
		}
		status = models.ReservationStatusConfirmed
	}

	reservation := models.Reservation{
		CompanyID:    companyID,
		TableID:      input.TableID,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Date:         input.Date,
		Time:         input.Time,
		PartySize:    input.PartySize,
		Status:       status,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Cancel membatalkan reservasi dan membebaskan mejanya kalau ada.
func (s *ReservationService) Cancel(companyID, reservationID uint, actor Actor) (*models.Reservation, error) {
	reservation, err := s.Get(companyID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == models.ReservationStatusCancelled {
		return nil, utils.NewConflictError("reservation %d is already cancelled", reservationID)
	}

	if reservation.TableID != nil && reservation.Status == models.ReservationStatusConfirmed {
		if _, err := s.tables.FreeTable(companyID, *reservation.TableID, nil, actor); err != nil {
			var conflictErr *utils.ConflictError
			// Meja bisa saja sudah dibebaskan oleh sweeper; itu bukan alasan
			// untuk menolak pembatalan reservasinya.
			if !errors.As(err, &conflictErr) {
				return nil, err
			}
		}
	}

	if err := s.db.Model(reservation).Update("status", models.ReservationStatusCancelled).Error; err != nil {
		return nil, err
	}
	reservation.Status = models.ReservationStatusCancelled
	return reservation, nil
}
