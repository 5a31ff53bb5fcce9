package models

import (
	"time"
)

// Location is a pickup/viewing point referenced by listings.
type Location struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:150"`
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

// Transmission choices
const (
	TransmissionManual   = "manual"
	TransmissionAuto     = "auto"
	TransmissionSemiAuto = "semi-auto"
)

// Ownership buckets
const (
	OwnerFirst      = "1st Owner"
	OwnerSecond     = "2nd Owner"
	OwnerThird      = "3rd Owner"
	OwnerFourthPlus = "4th+ Owner"
)

// Odometer kinds
const (
	OdometerAnalogue = "analogue"
	OdometerDigital  = "digital"
	OdometerBoth     = "both"
)

type BuyBike struct {
	ID          string `json:"id" gorm:"primaryKey;size:191"`
	Title       string `json:"title" gorm:"not null;size:255"`
	Description string `json:"description" gorm:"type:text"`
	Price       uint   `json:"price" gorm:"not null"`

	LocationID *string   `json:"location_id" gorm:"size:191"`
	Location   *Location `json:"location" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`

	// basic meta
	Brand            string `json:"brand" gorm:"size:100;index"`
	BikeModel        string `json:"bike_model" gorm:"size:150"`
	BikeVariant      string `json:"bike_variant" gorm:"size:120"`
	Year             *int   `json:"year"`
	RegistrationYear *int   `json:"registration_year"`
	Kilometers       *int   `json:"kilometers"`
	EngineCC         *int   `json:"engine_cc" gorm:"column:engine_cc"`
	FuelType         string `json:"fuel_type" gorm:"size:50"`
	Color            string `json:"color" gorm:"size:50"`
	Category         string `json:"category" gorm:"size:100"`

	// ownership & transmission
	Owner        string `json:"owner" gorm:"size:150"`
	Owners       string `json:"owners" gorm:"size:20"`
	Transmission string `json:"transmission" gorm:"size:12"`

	// RTO/registration
	RTOState string `json:"rto_state" gorm:"column:rto_state;size:120"`
	RTOCity  string `json:"rto_city" gorm:"column:rto_city;size:120"`

	// yes/no flags
	Refurbished             bool `json:"refurbished" gorm:"default:false"`
	RegistrationCertificate bool `json:"registration_certificate" gorm:"default:false"`
	Finance                 bool `json:"finance" gorm:"default:false"`
	Insurance               bool `json:"insurance" gorm:"default:false"`
	Warranty                bool `json:"warranty" gorm:"default:false"`
	IsBooked                bool `json:"is_booked" gorm:"default:false"`

	// images
	FeaturedImageURL string `json:"featured_image" gorm:"size:500"`
	CardBgImageURL   string `json:"card_bg_image" gorm:"size:500"`
	VariantImage1URL string `json:"variant_image1" gorm:"size:500"`
	VariantImage2URL string `json:"variant_image2" gorm:"size:500"`
	VariantImage3URL string `json:"variant_image3" gorm:"size:500"`
	VariantImage4URL string `json:"variant_image4" gorm:"size:500"`
	VariantImage5URL string `json:"variant_image5" gorm:"size:500"`

	// specs
	IgnitionType   string `json:"ignition_type" gorm:"size:120"`
	FrontBrakeType string `json:"front_brake_type" gorm:"size:120"`
	RearBrakeType  string `json:"rear_brake_type" gorm:"size:120"`
	ABS            bool   `json:"abs" gorm:"column:abs;default:false"`
	Odometer       string `json:"odometer" gorm:"size:20"`
	WheelType      string `json:"wheel_type" gorm:"size:120"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}
