package services

import (
	"errors"
	"time"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// OrderService memegang order per company. Pembuatan order menempati meja
// (available -> occupied) dan penutupan order membebaskannya lagi lewat
// TableService, sehingga semua perubahan status meja tetap melewati state
// machine dan menghasilkan audit log.
type OrderService struct {
	db     *gorm.DB
	tables *TableService
}

func NewOrderService(db *gorm.DB, tables *TableService) *OrderService {
	return &OrderService{db: db, tables: tables}
}

type OrderItemInput struct {
	DishID   uint   `json:"dish_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

type CreateOrderInput struct {
	TableID uint             `json:"table_id" binding:"required"`
	Notes   string           `json:"notes"`
	Items   []OrderItemInput `json:"items" binding:"required"`
}

func (s *OrderService) ListByCompany(companyID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := s.db.Where("company_id = ?", companyID).
		Preload("OrderItems").Preload("OrderItems.Dish").
		Order("id desc").Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(companyID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("company_id = ?", companyID).
		Preload("OrderItems").Preload("OrderItems.Dish").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create membuat order beserta item-nya, lalu menempati meja. Jika meja
// tidak bisa ditempati (guard state machine gagal), order yang baru dibuat
// dibatalkan lagi dan error guard diteruskan ke pemanggil.
func (s *OrderService) Create(companyID uint, input CreateOrderInput, actor Actor) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, utils.NewValidationError("order must contain at least one item")
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			CompanyID: companyID,
			TableID:   input.TableID,
			Status:    models.OrderStatusOpen,
			Notes:     input.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := 0.0
		for _, item := range input.Items {
			if item.Quantity <= 0 {
				return utils.NewValidationError("item quantity must be a positive number")
			}
			var dish models.Dish
			err := tx.Where("company_id = ?", companyID).First(&dish, item.DishID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewValidationError("dish %d does not exist", item.DishID)
			}
			if err != nil {
				return err
			}
			if !dish.IsAvailable {
				return utils.NewConflictError("dish %s is not available", dish.Name)
			}

			orderItem := models.OrderItem{
				OrderID:   order.ID,
				DishID:    dish.ID,
				Quantity:  item.Quantity,
				UnitPrice: dish.Price,
				Notes:     item.Notes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			total += dish.Price * float64(item.Quantity)
		}

		return tx.Model(&order).Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.tables.AssignOrder(companyID, input.TableID, order.ID, actor); err != nil {
		// Meja tidak bisa ditempati: batalkan order yang baru dibuat.
		now := time.Now()
		s.db.Model(&models.Order{}).Where("id = ?", order.ID).
			Updates(map[string]interface{}{"status": models.OrderStatusCancelled, "closed_at": &now})
		return nil, err
	}

	return s.Get(companyID, order.ID)
}

// MarkServed menandai order sudah diantar; meja tetap occupied.
func (s *OrderService) MarkServed(companyID, orderID uint) (*models.Order, error) {
	order, err := s.Get(companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusOpen {
		return nil, utils.NewConflictError("order %d is %s, cannot be marked served", orderID, order.Status)
	}
	if err := s.db.Model(order).Update("status", models.OrderStatusServed).Error; err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusServed
	return order, nil
}

// Close menutup order dan membebaskan mejanya. Meja dibebaskan dulu; kalau
// guard-nya gagal (order bukan penghuni meja saat ini), order tetap terbuka.
func (s *OrderService) Close(companyID, orderID uint, actor Actor) (*models.Order, error) {
	return s.finish(companyID, orderID, models.OrderStatusClosed, actor)
}

// Cancel membatalkan order terbuka dan membebaskan mejanya.
func (s *OrderService) Cancel(companyID, orderID uint, actor Actor) (*models.Order, error) {
	return s.finish(companyID, orderID, models.OrderStatusCancelled, actor)
}

func (s *OrderService) finish(companyID, orderID uint, finalStatus string, actor Actor) (*models.Order, error) {
	order, err := s.Get(companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusOpen && order.Status != models.OrderStatusServed {
		return nil, utils.NewConflictError("order %d is already %s", orderID, order.Status)
	}

	if _, err := s.tables.FreeTable(companyID, order.TableID, &order.ID, actor); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.Model(order).
		Updates(map[string]interface{}{"status": finalStatus, "closed_at": &now}).Error; err != nil {
		return nil, err
	}
	order.Status = finalStatus
	order.ClosedAt = &now
	return order, nil
}
