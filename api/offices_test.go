package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOfficeUseCase is a mock implementation of offices.OfficeUseCase
type MockOfficeUseCase struct {
	mock.Mock
}

func (m *MockOfficeUseCase) ListOffices(ctx context.Context) ([]domain.Office, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Office), args.Error(1)
}

func (m *MockOfficeUseCase) GetOfficeBySlug(ctx context.Context, slug string) (*domain.Office, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *MockOfficeUseCase) ListCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockOfficeUseCase) GetCityBySlug(ctx context.Context, slug string) (*domain.City, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func TestOfficeHandler_listOffices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockOfficeUseCase{}
	handler := NewOfficeHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	offices := []domain.Office{{
		ID:        1,
		Name:      "Angga Park Central",
		Slug:      "angga-park-central",
		Thumbnail: "thumbnails/office-1.png",
		City:      &domain.City{ID: 1, Name: "Jakarta", Slug: "jakarta"},
	}}
	mockService.On("ListOffices", mock.Anything).Return(offices, nil).Once()

	c.Request = httptest.NewRequest("GET", "/api/offices", nil)

	handler.listOffices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []officeResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Jakarta", resp.Data[0].City.Name)
}

func TestOfficeHandler_getOffice_notFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockOfficeUseCase{}
	handler := NewOfficeHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	mockService.On("GetOfficeBySlug", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	c.Request = httptest.NewRequest("GET", "/api/office/missing", nil)
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	handler.getOffice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOfficeHandler_getCity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := &MockOfficeUseCase{}
	handler := NewOfficeHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	city := &domain.City{
		ID:   1,
		Name: "Jakarta",
		Slug: "jakarta",
		OfficeSpaces: []domain.Office{
			{ID: 1, Name: "Angga Park Central"},
		},
		OfficeSpacesCount: 1,
	}
	mockService.On("GetCityBySlug", mock.Anything, "jakarta").Return(city, nil).Once()

	c.Request = httptest.NewRequest("GET", "/api/city/jakarta", nil)
	c.Params = gin.Params{{Key: "slug", Value: "jakarta"}}

	handler.getCity(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data cityResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.OfficeSpacesCount)
	assert.Len(t, resp.Data.OfficeSpaces, 1)
}
