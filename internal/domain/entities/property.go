package entities

import (
	"strings"
	"time"
)

const (
	DefaultCity     = "Toronto"
	DefaultProvince = "ON"
)

// Property is the real estate an application is filed against.
//
// Storage model (DynamoDB):
//   - PK: id
type Property struct {
	ID               string    `json:"id"`
	StreetNumber     string    `json:"street_number"`
	StreetName       string    `json:"street_name"`
	UnitNumber       string    `json:"unit_number,omitempty"`
	City             string    `json:"city"`
	Province         string    `json:"province"`
	PostalCode       string    `json:"postal_code"`
	LegalDescription string    `json:"legal_description,omitempty"`
	Ward             string    `json:"ward,omitempty"`
	Zoning           string    `json:"zoning,omitempty"`
	LotSize          float64   `json:"lot_size,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FullAddress renders "[unit-]number street, city, province postal".
func (p Property) FullAddress() string {
	street := strings.TrimSpace(p.StreetNumber + " " + p.StreetName)
	if p.UnitNumber != "" {
		street = p.UnitNumber + "-" + street
	}
	return strings.TrimSpace(street + ", " + p.City + ", " + strings.TrimSpace(p.Province+" "+p.PostalCode))
}

func (p Property) String() string {
	return p.FullAddress()
}
