package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shop-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/shop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC       *ucAppointment.List
	transitionUC *ucAppointment.Transition
	deleteUC     *ucAppointment.Delete
}

func NewAppointmentHandler(
	listUC *ucAppointment.List,
	transitionUC *ucAppointment.Transition,
	deleteUC *ucAppointment.Delete,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:       listUC,
		transitionUC: transitionUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List returns the operator's appointments, filterable by free-text
// search, status and date-range preset, sortable by date/customer/status.
func (h *AppointmentHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := ucAppointment.ListQuery{
		Search: c.Query("search"),
		Range:  ucAppointment.DateRange(c.Query("range")),
		Sort:   domain.SortKey(c.Query("sort")),
	}

	if s := c.Query("status"); s != "" {
		status, ok := domain.ParseStatus(s)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Unknown status filter.")
			return
		}
		q.Status = status
	}

	aps, err := h.listUC.Execute(c.Request.Context(), shopID, q)
	if err != nil {
		httperr.Internal(c, "list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

// Transition handles confirm/cancel/complete as one parameterized
// action; the target status comes from the route.
func (h *AppointmentHandler) Transition(target domain.Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.MustGet(middleware.ContextShopID).(uint)
		userID := c.MustGet(middleware.ContextUserID).(uint)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
			return
		}

		ap, err := h.transitionUC.Execute(
			c.Request.Context(),
			shopID,
			userID,
			uint(id),
			target,
		)
		if err != nil {
			writeBookingError(c, err)
			return
		}

		httpresp.OK(c, ap)
	}
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), shopID, userID, uint(id)); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Status(204)
}
