package api

import (
	"errors"
	"net/http"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// The response shapes below are the wire contract the React storefront
// consumes; field names and nesting (office.city.name, office.thumbnail)
// must stay stable.

type cityResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Photo string `json:"photo"`

	OfficeSpacesCount int              `json:"officeSpaces_count"`
	OfficeSpaces      []officeResponse `json:"officeSpaces,omitempty"`
}

type photoResponse struct {
	ID    int64  `json:"id"`
	Photo string `json:"photo"`
}

type benefitResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type officeResponse struct {
	ID        int64             `json:"id"`
	Price     int64             `json:"price"`
	Duration  int               `json:"duration"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	City      *cityResponse     `json:"city,omitempty"`
	Thumbnail string            `json:"thumbnail"`
	Photos    []photoResponse   `json:"photos"`
	Benefits  []benefitResponse `json:"benefits"`
	About     string            `json:"about"`
	Address   string            `json:"address"`
}

type bookingDetailsResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	PhoneNumber  string          `json:"phone_number"`
	BookingTrxID string          `json:"booking_trx_id"`
	IsPaid       bool            `json:"is_paid"`
	Duration     int             `json:"duration"`
	TotalAmount  int64           `json:"total_amount"`
	StartedAt    string          `json:"started_at"`
	EndedAt      string          `json:"ended_at"`
	Office       *officeResponse `json:"office,omitempty"`
}

func toCityResponse(c *domain.City, withOffices bool) *cityResponse {
	if c == nil {
		return nil
	}
	resp := &cityResponse{
		ID:                c.ID,
		Name:              c.Name,
		Slug:              c.Slug,
		Photo:             c.Photo,
		OfficeSpacesCount: c.OfficeSpacesCount,
	}
	if withOffices {
		resp.OfficeSpaces = make([]officeResponse, 0, len(c.OfficeSpaces))
		for i := range c.OfficeSpaces {
			resp.OfficeSpaces = append(resp.OfficeSpaces, *toOfficeResponse(&c.OfficeSpaces[i]))
		}
	}
	return resp
}

func toOfficeResponse(o *domain.Office) *officeResponse {
	if o == nil {
		return nil
	}
	resp := &officeResponse{
		ID:        o.ID,
		Price:     o.Price,
		Duration:  o.Duration,
		Name:      o.Name,
		Slug:      o.Slug,
		City:      toCityResponse(o.City, false),
		Thumbnail: o.Thumbnail,
		Photos:    make([]photoResponse, 0, len(o.Photos)),
		Benefits:  make([]benefitResponse, 0, len(o.Benefits)),
		About:     o.About,
		Address:   o.Address,
	}
	for _, p := range o.Photos {
		resp.Photos = append(resp.Photos, photoResponse{ID: p.ID, Photo: p.Photo})
	}
	for _, b := range o.Benefits {
		resp.Benefits = append(resp.Benefits, benefitResponse{ID: b.ID, Name: b.Name})
	}
	return resp
}

func toBookingDetailsResponse(b *domain.BookingTransaction) *bookingDetailsResponse {
	return &bookingDetailsResponse{
		ID:           b.ID,
		Name:         b.Name,
		PhoneNumber:  b.PhoneNumber,
		BookingTrxID: b.BookingTrxID,
		IsPaid:       b.IsPaid,
		Duration:     b.Duration,
		TotalAmount:  b.TotalAmount,
		StartedAt:    b.StartedAt.Format(dateLayout),
		EndedAt:      b.EndedAt.Format(dateLayout),
		Office:       toOfficeResponse(b.Office),
	}
}

// respondError maps service errors onto the HTTP taxonomy: field-level 400s
// for validation, 404 for misses, 409 for repeated approval, generic 500
// otherwise.
func respondError(c *gin.Context, err error) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": fieldErrs})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{"message": "booking is already paid"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
