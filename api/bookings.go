package api

import (
	"net/http"

	"github.com/firstoffice/officebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	StartedAt     string `json:"started_at"`
	OfficeSpaceID int64  `json:"office_space_id"`
}

type checkBookingRequest struct {
	BookingTrxID string `json:"booking_trx_id"`
	PhoneNumber  string `json:"phone_number"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.POST("/check-booking", h.check)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		StartedAt:     req.StartedAt,
		OfficeSpaceID: req.OfficeSpaceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toBookingDetailsResponse(created)})
}

func (h *BookingHandler) check(c *gin.Context) {
	var req checkBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	found, err := h.service.CheckBooking(c.Request.Context(), booking.CheckBookingInput{
		BookingTrxID: req.BookingTrxID,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toBookingDetailsResponse(found)})
}
