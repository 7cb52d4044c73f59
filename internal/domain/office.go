package domain

import "time"

type Office struct {
	ID        int64
	CityID    int64
	Name      string
	Slug      string
	Price     int64
	Duration  int
	Thumbnail string
	About     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time

	City     *City
	Photos   []Photo
	Benefits []Benefit
}

type City struct {
	ID        int64
	Name      string
	Slug      string
	Photo     string
	CreatedAt time.Time
	UpdatedAt time.Time

	OfficeSpacesCount int
	OfficeSpaces      []Office
}

type Photo struct {
	ID            int64
	OfficeSpaceID int64
	Photo         string
}

type Benefit struct {
	ID            int64
	OfficeSpaceID int64
	Name          string
}
