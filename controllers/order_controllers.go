package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/events"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Tables *services.TableService
}

func NewOrderController(orders *services.OrderService, tables *services.TableService) *OrderController {
	return &OrderController{Orders: orders, Tables: tables}
}

// GetCompanyOrders -> semua order satu company
func (oc *OrderController) GetCompanyOrders(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	orders, err := oc.Orders.ListByCompany(companyID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// CreateOrder -> order baru menempati meja (available -> occupied)
func (oc *OrderController) CreateOrder(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if !canAccessCompany(c, companyID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("forbidden"))
		return
	}

	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Create(companyID, input, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	oc.broadcastTable(companyID, order.TableID)
	utils.InfoLogger.Printf("Order %d created on table %d (total %.2f)", order.ID, order.TableID, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, order)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	order, err := oc.Orders.Get(companyFromContext(c), orderID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// MarkOrderServed -> order diantar, meja tetap occupied
func (oc *OrderController) MarkOrderServed(c *gin.Context) {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	order, err := oc.Orders.MarkServed(companyFromContext(c), orderID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// CloseOrder -> tutup order dan bebaskan mejanya (occupied -> available)
func (oc *OrderController) CloseOrder(c *gin.Context) {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	companyID := companyFromContext(c)
	order, err := oc.Orders.Close(companyID, orderID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	oc.broadcastTable(companyID, order.TableID)
	utils.InfoLogger.Printf("Order %d closed, table %d freed", order.ID, order.TableID)
	utils.RespondJSON(c, http.StatusOK, order)
}

// CancelOrder -> batalkan order terbuka dan bebaskan mejanya
func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	companyID := companyFromContext(c)
	order, err := oc.Orders.Cancel(companyID, orderID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	oc.broadcastTable(companyID, order.TableID)
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) broadcastTable(companyID, tableID uint) {
	if table, err := oc.Tables.Get(companyID, tableID); err == nil {
		events.BroadcastTableUpdate(*table)
	}
}
