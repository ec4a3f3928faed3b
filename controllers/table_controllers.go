package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/events"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// GetCompanyTables -> semua meja aktif milik satu company
func (tc *TableController) GetCompanyTables(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	tables, err := tc.Tables.ListByCompany(companyID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tables)
}

// CreateTable -> menambahkan meja baru (status awal available)
func (tc *TableController) CreateTable(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if !canAccessCompany(c, companyID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("forbidden"))
		return
	}

	var input services.CreateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Create(companyID, input, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableCreate(*table)
	utils.InfoLogger.Printf("Table %s created for company %d", table.Number, companyID)
	utils.RespondJSON(c, http.StatusCreated, table)
}

// GetTableByID -> detail satu meja dalam scope tenant
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	table, err := tc.Tables.Get(companyFromContext(c), tableID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, table)
}

// UpdateTable -> ubah number/capacity/zone
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	var input services.UpdateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Update(companyFromContext(c), tableID, input, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.RespondJSON(c, http.StatusOK, table)
}

// ReserveTable -> available ke reserved
func (tc *TableController) ReserveTable(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Reserve(companyFromContext(c), tableID, body.Date, body.Time, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.InfoLogger.Printf("Table %s reserved for %s %s", table.Number, body.Date, body.Time)
	utils.RespondJSON(c, http.StatusOK, table)
}

// FreeTable -> lepaskan reservasi (occupied dibebaskan lewat penutupan order)
func (tc *TableController) FreeTable(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	table, err := tc.Tables.FreeTable(companyFromContext(c), tableID, nil, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.RespondJSON(c, http.StatusOK, table)
}

// MarkOutOfService -> admin menonaktifkan meja
func (tc *TableController) MarkOutOfService(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	table, err := tc.Tables.MarkOutOfService(companyFromContext(c), tableID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.InfoLogger.Printf("Table %s marked out of service", table.Number)
	utils.RespondJSON(c, http.StatusOK, table)
}

// RestoreTable -> admin mengembalikan meja out_of_service
func (tc *TableController) RestoreTable(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	table, err := tc.Tables.Restore(companyFromContext(c), tableID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.RespondJSON(c, http.StatusOK, table)
}

// DeleteTable -> soft delete, baris dan audit trail tetap ada
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	table, err := tc.Tables.SoftDelete(companyFromContext(c), tableID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	events.BroadcastTableDelete(*table)
	utils.InfoLogger.Printf("Table %s deleted (soft)", table.Number)
	utils.RespondJSON(c, http.StatusOK, gin.H{"id": table.ID})
}

// GetTableLogs -> audit trail lengkap satu meja
func (tc *TableController) GetTableLogs(c *gin.Context) {
	tableID, err := idParam(c, "table_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	logs, err := tc.Tables.Logs(companyFromContext(c), tableID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, logs)
}
