package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockBookingUseCase{}
	handler := NewAdminHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	approved := sampleBooking()
	approved.IsPaid = true
	mockService.On("ApproveBooking", mock.Anything, int64(7)).Return(approved, nil).Once()

	c.Request = httptest.NewRequest("POST", "/api/admin/bookings/7/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	handler.approve(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string                 `json:"message"`
		Data    bookingDetailsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "OTRX12345")
	assert.True(t, resp.Data.IsPaid)

	mockService.AssertExpectations(t)
}

func TestAdminHandler_approve_alreadyPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockBookingUseCase{}
	handler := NewAdminHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	paid := sampleBooking()
	paid.IsPaid = true
	mockService.On("ApproveBooking", mock.Anything, int64(7)).Return(paid, domain.ErrAlreadyPaid).Once()

	c.Request = httptest.NewRequest("POST", "/api/admin/bookings/7/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	handler.approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_approve_invalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockBookingUseCase{}
	handler := NewAdminHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/admin/bookings/abc/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ApproveBooking")
}

func TestAdminHandler_bulkDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockBookingUseCase{}
	handler := NewAdminHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	mockService.On("DeleteBookings", mock.Anything, []int64{1, 2}).Return(int64(2), nil).Once()

	body, _ := json.Marshal(map[string][]int64{"ids": {1, 2}})
	c.Request = httptest.NewRequest("DELETE", "/api/admin/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.bulkDelete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":2`)
}

func TestAdminHandler_list(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockBookingUseCase{}
	handler := NewAdminHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	mockService.On("ListBookings", mock.Anything).Return([]domain.BookingTransaction{*sampleBooking()}, nil).Once()

	c.Request = httptest.NewRequest("GET", "/api/admin/bookings", nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "OTRX12345")
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", APIKeyAuth("secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-Api-Key", "wrong")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-Api-Key", "secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_emptyKeyDeniesAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", APIKeyAuth(""), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-Api-Key", "")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
