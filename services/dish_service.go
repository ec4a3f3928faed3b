package services

import (
	"errors"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// DishService memegang koleksi menu (dish) per company.
type DishService struct {
	db *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

type DishInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

func (s *DishService) ListByCompany(companyID uint) ([]models.Dish, error) {
	dishes := make([]models.Dish, 0)
	err := s.db.Where("company_id = ?", companyID).Order("category asc, name asc").Find(&dishes).Error
	return dishes, err
}

func (s *DishService) Get(companyID, dishID uint) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.Where("company_id = ?", companyID).First(&dish, dishID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("dish %d not found", dishID)
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *DishService) Create(companyID uint, input DishInput) (*models.Dish, error) {
	if input.Price < 0 {
		return nil, utils.NewValidationError("dish price cannot be negative")
	}

	dish := models.Dish{
		CompanyID:   companyID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		dish.IsAvailable = *input.IsAvailable
	}

	if err := s.db.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *DishService) Update(companyID, dishID uint, input DishInput) (*models.Dish, error) {
	dish, err := s.Get(companyID, dishID)
	if err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, utils.NewValidationError("dish price cannot be negative")
	}

	dish.Name = input.Name
	dish.Description = input.Description
	dish.Category = input.Category
	dish.Price = input.Price
	dish.ImageURL = input.ImageURL
	if input.IsAvailable != nil {
		dish.IsAvailable = *input.IsAvailable
	}

	if err := s.db.Save(dish).Error; err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(companyID, dishID uint) error {
	dish, err := s.Get(companyID, dishID)
	if err != nil {
		return err
	}
	return s.db.Delete(dish).Error
}
