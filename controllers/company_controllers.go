package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// CompanyController: manajemen tenant, hanya untuk superadmin.
type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

func (cc *CompanyController) GetAllCompanies(c *gin.Context) {
	companies := make([]models.Company, 0)
	if err := cc.DB.Order("name asc").Find(&companies).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, companies)
}

func (cc *CompanyController) CreateCompany(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	company := models.Company{Name: req.Name, Slug: req.Slug, IsActive: true}
	if err := cc.DB.Create(&company).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("company slug already in use"))
		return
	}

	utils.InfoLogger.Printf("Company %s created (slug=%s)", company.Name, company.Slug)
	utils.RespondJSON(c, http.StatusCreated, company)
}
