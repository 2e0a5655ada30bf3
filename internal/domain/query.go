package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	ErrIncompleteQuery     = errors.New("incomplete query")
	ErrInvalidSearchParams = errors.New("invalid search params")
)

// Required fields, in the order they are reported as missing.
const (
	FieldCity     = "city"
	FieldCheckIn  = "check-in date"
	FieldCheckOut = "check-out date"
)

type PropertyType string

const (
	PropertyUnspecified PropertyType = ""
	PropertyResort      PropertyType = "resort"
	PropertyApartment   PropertyType = "apartment"
	PropertyVilla       PropertyType = "villa"
	PropertyHostel      PropertyType = "hostel"
)

type Preferences struct {
	MinStars  *int     `json:"minStars,omitempty"`
	MaxStars  *int     `json:"maxStars,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	Amenities []string `json:"amenities,omitempty"`

	PoolRequired  bool `json:"poolRequired,omitempty"`
	GymRequired   bool `json:"gymRequired,omitempty"`
	SpaRequired   bool `json:"spaRequired,omitempty"`
	FreeBreakfast bool `json:"freeBreakfast,omitempty"`
	FreeParking   bool `json:"freeParking,omitempty"`
	PetFriendly   bool `json:"petFriendly,omitempty"`

	NearAirport  bool `json:"nearAirport,omitempty"`
	NearBeach    bool `json:"nearBeach,omitempty"`
	NearDowntown bool `json:"nearDowntown,omitempty"`

	PropertyType PropertyType `json:"propertyType,omitempty"`
}

type ParsedQuery struct {
	City          string      `json:"city,omitempty"`
	CheckIn       *Date       `json:"checkIn,omitempty"`
	CheckOut      *Date       `json:"checkOut,omitempty"`
	Guests        int         `json:"guests"`
	Rooms         int         `json:"rooms"`
	Preferences   Preferences `json:"preferences"`
	MissingFields []string    `json:"missingFields"`
}

func (q ParsedQuery) Complete() bool { return len(q.MissingFields) == 0 }

type SearchParams struct {
	City        string      `json:"city" validate:"required"`
	CheckIn     Date        `json:"checkIn"`
	CheckOut    Date        `json:"checkOut"`
	Guests      int         `json:"guests" validate:"min=1,max=20"`
	Rooms       int         `json:"rooms" validate:"min=1,max=20,ltefield=Guests"`
	Preferences Preferences `json:"preferences"`
}

var validate = validator.New()

// NewSearchParams promotes a complete ParsedQuery into provider-ready params.
func NewSearchParams(q ParsedQuery) (SearchParams, error) {
	if !q.Complete() {
		return SearchParams{}, fmt.Errorf("%w: missing %v", ErrIncompleteQuery, q.MissingFields)
	}
	if q.CheckIn == nil || q.CheckOut == nil {
		return SearchParams{}, fmt.Errorf("%w: dates not set", ErrInvalidSearchParams)
	}
	p := SearchParams{
		City:        q.City,
		CheckIn:     *q.CheckIn,
		CheckOut:    *q.CheckOut,
		Guests:      q.Guests,
		Rooms:       q.Rooms,
		Preferences: q.Preferences,
	}
	if err := validate.Struct(p); err != nil {
		return SearchParams{}, fmt.Errorf("%w: %v", ErrInvalidSearchParams, err)
	}
	if !p.CheckOut.After(p.CheckIn) {
		return SearchParams{}, fmt.Errorf("%w: check-out %s not after check-in %s", ErrInvalidSearchParams, p.CheckOut, p.CheckIn)
	}
	return p, nil
}

// Nights is the calendar-day length of the stay, never less than one.
func (p SearchParams) Nights() int {
	hours := p.CheckOut.Time().Sub(p.CheckIn.Time()).Hours()
	n := int(math.Ceil(hours / 24))
	if n < 1 {
		return 1
	}
	return n
}

type Accommodation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalPrice    float64  `json:"totalPrice"`
	Currency      string   `json:"currency"`
	Amenities     []string `json:"amenities"`
	Distance      string   `json:"distance"`
	CheckIn       Date     `json:"checkIn"`
	CheckOut      Date     `json:"checkOut"`
	Guests        int      `json:"guests"`
	Rooms         int      `json:"rooms"`
	Availability  string   `json:"availability"`
	Image         string   `json:"image,omitempty"`
	RateID        string   `json:"rateId,omitempty"`
}
