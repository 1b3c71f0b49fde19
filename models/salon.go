package models

import (
	"time"

	"salonbook/services/availability"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a latitude and longitude.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// BusinessHours is the opening window of a salon for one weekday.
type BusinessHours = availability.BusinessHours

// Salon is a business run by a designer.
type Salon struct {
	ID            string          `bson:"id" json:"id"`
	OwnerID       string          `bson:"ownerId" json:"owner_id"`
	Name          string          `bson:"name" json:"name"`
	Address       string          `bson:"address" json:"address"`
	Phone         string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string          `bson:"email,omitempty" json:"email,omitempty"`
	Location      GeoPoint        `bson:"location" json:"location"`
	BusinessHours []BusinessHours `bson:"businessHours" json:"business_hours"`
	Services      []Service       `bson:"services" json:"services"`
	CreatedAt     time.Time       `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updated_at"`

	// Distance is filled by nearby searches, in meters.
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty"`
}

// HoursFor returns the record for a weekday, or nil when the salon has none.
func (s *Salon) HoursFor(weekday time.Weekday) *BusinessHours {
	return availability.HoursFor(s.BusinessHours, weekday)
}

// ServiceByID looks a service up in the salon's menu.
func (s *Salon) ServiceByID(id string) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i], true
		}
	}
	return nil, false
}

// SetupSalonRequest creates a salon and promotes its owner to designer.
type SetupSalonRequest struct {
	Name          string          `json:"name" binding:"required"`
	Address       string          `json:"address" binding:"required"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Latitude      float64         `json:"latitude" binding:"min=-90,max=90"`
	Longitude     float64         `json:"longitude" binding:"min=-180,max=180"`
	BusinessHours []BusinessHours `json:"business_hours" binding:"required"`
	Services      []Service       `json:"services"`
}

// UpdateSalonRequest changes the given parts of a salon. Nil means unchanged.
type UpdateSalonRequest struct {
	Name          *string         `json:"name"`
	Address       *string         `json:"address"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	BusinessHours []BusinessHours `json:"business_hours"`
	Services      []Service       `json:"services"`
}

// SalonSearchCriteria filters nearby searches.
type SalonSearchCriteria struct {
	Latitude    float64 `form:"lat" binding:"min=-90,max=90"`
	Longitude   float64 `form:"lng" binding:"min=-180,max=180"`
	RadiusKm    float64 `form:"radiusKm"`
	ServiceType string  `form:"type"`
}
