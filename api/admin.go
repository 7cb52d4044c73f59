package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/firstoffice/officebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service booking.BookingUseCase
}

type deleteBookingsRequest struct {
	IDs []int64 `json:"ids"`
}

func NewAdminHandler(service booking.BookingUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/bookings", h.list)
	router.POST("/bookings/:id/approve", h.approve)
	router.DELETE("/bookings", h.bulkDelete)
}

func (h *AdminHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]bookingDetailsResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, *toBookingDetailsResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *AdminHandler) approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking id"})
		return
	}

	approved, err := h.service.ApproveBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("The booking with TRX ID: %s has been approved.", approved.BookingTrxID),
		"data":    toBookingDetailsResponse(approved),
	})
}

func (h *AdminHandler) bulkDelete(c *gin.Context) {
	var req deleteBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	deleted, err := h.service.DeleteBookings(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": deleted}})
}
