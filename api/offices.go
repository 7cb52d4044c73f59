package api

import (
	"net/http"

	"github.com/firstoffice/officebooking/internal/service/offices"
	"github.com/gin-gonic/gin"
)

type OfficeHandler struct {
	service offices.OfficeUseCase
}

func NewOfficeHandler(service offices.OfficeUseCase) *OfficeHandler {
	return &OfficeHandler{service: service}
}

func (h *OfficeHandler) Register(router *gin.RouterGroup) {
	router.GET("/offices", h.listOffices)
	router.GET("/office/:slug", h.getOffice)
	router.GET("/cities", h.listCities)
	router.GET("/city/:slug", h.getCity)
}

func (h *OfficeHandler) listOffices(c *gin.Context) {
	list, err := h.service.ListOffices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]officeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, *toOfficeResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *OfficeHandler) getOffice(c *gin.Context) {
	office, err := h.service.GetOfficeBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toOfficeResponse(office)})
}

func (h *OfficeHandler) listCities(c *gin.Context) {
	list, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]cityResponse, 0, len(list))
	for i := range list {
		resp = append(resp, *toCityResponse(&list[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *OfficeHandler) getCity(c *gin.Context) {
	city, err := h.service.GetCityBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toCityResponse(city, true)})
}
