package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// GetCompanyReservations -> semua reservasi satu company
func (rc *ReservationController) GetCompanyReservations(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	reservations, err := rc.Reservations.ListByCompany(companyID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if !canAccessCompany(c, companyID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("forbidden"))
		return
	}

	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.Create(companyID, input, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for %s (%s %s)",
		reservation.ID, reservation.CustomerName, reservation.Date, reservation.Time)
	utils.RespondJSON(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID, err := idParam(c, "reservation_id")
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	reservation, err := rc.Reservations.Cancel(companyFromContext(c), reservationID, actorFromContext(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}
