package domain

import "time"

// ListingType - how the property is offered.
type ListingType string

const (
	ListingBuy  ListingType = "BUY"
	ListingRent ListingType = "RENT"
)

// PropertyType - the physical kind of the property.
type PropertyType string

const (
	PropertyHouse      PropertyType = "HOUSE"
	PropertyApartment  PropertyType = "APARTMENT"
	PropertyVilla      PropertyType = "VILLA"
	PropertyCommercial PropertyType = "COMMERCIAL"
	PropertyLand       PropertyType = "LAND"
)

// PropertyStatus - commercial availability of the listing.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "AVAILABLE"
	StatusPending   PropertyStatus = "PENDING"
	StatusSold      PropertyStatus = "SOLD"
	StatusRented    PropertyStatus = "RENTED"
)

// Property is one listing.
// A property is publicly listable iff Approved is true; ViewCount only grows.
type Property struct {
	ID string

	Price       float64
	ListingType ListingType
	Status      PropertyStatus

	PropertyType PropertyType
	Bedrooms     int
	Bathrooms    int
	SurfaceArea  float64
	YearBuilt    int // 0 = unknown / not applicable

	Address      string
	City         string
	Neighborhood string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64

	HasPool     bool
	HasParking  bool
	HasGarden   bool
	HasAC       bool
	HasGym      bool
	HasElevator bool
	HasSecurity bool

	// Images keeps display order; index 0 is the canonical thumbnail.
	Images      []string
	VideoURL    string
	VirtualTour string

	Featured  bool
	Approved  bool
	ViewCount int
	AgentID   string
	AgentName string

	CreatedAt time.Time
}

// MainImage returns the canonical thumbnail, or an empty string when the
// listing has no media.
func (p *Property) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PaginatedProperties - standard shape for a paginated catalog answer.
type PaginatedProperties struct {
	Properties []Property
	TotalCount int
}
