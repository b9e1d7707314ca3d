package handlers

import (
	"net/http"

	recordsRepo "roomly/database/repository/records"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

// BookingRecordsHandler exposes the committed-booking audit log, read-only,
// for diagnostics.
type BookingRecordsHandler struct {
	Records recordsRepo.BookingRecordRepository
}

func NewBookingRecordsHandler(records recordsRepo.BookingRecordRepository) *BookingRecordsHandler {
	return &BookingRecordsHandler{Records: records}
}

// GetUserBookingsHandler returns every booking record for a user.
func (h *BookingRecordsHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing userID", "")
		return
	}

	records, err := h.Records.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking records", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}
