package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type DishController struct {
	Dishes *services.DishService
}

func NewDishController(dishes *services.DishService) *DishController {
	return &DishController{Dishes: dishes}
}

// GetCompanyDishes -> menu digital satu company (public)
func (dc *DishController) GetCompanyDishes(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	dishes, err := dc.Dishes.ListByCompany(companyID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dishes)
}

func (dc *DishController) CreateDish(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if !canAccessCompany(c, companyID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("forbidden"))
		return
	}

	var input services.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.Create(companyID, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Dish %s created for company %d", dish.Name, companyID)
	utils.RespondJSON(c, http.StatusCreated, dish)
}

func (dc *DishController) GetDishByID(c *gin.Context) {
	dishID, err := idParam(c, "dish_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	dish, err := dc.Dishes.Get(companyFromContext(c), dishID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dish)
}

func (dc *DishController) UpdateDish(c *gin.Context) {
	dishID, err := idParam(c, "dish_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	var input services.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish, err := dc.Dishes.Update(companyFromContext(c), dishID, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dish)
}

func (dc *DishController) DeleteDish(c *gin.Context) {
	dishID, err := idParam(c, "dish_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	if err := dc.Dishes.Delete(companyFromContext(c), dishID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"id": dishID})
}
