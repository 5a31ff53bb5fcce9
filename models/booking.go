package models

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusCreated   BookingStatus = "created"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// GSTRate is the flat tax rate applied to a booking subtotal.
const GSTRate = 0.18

type Booking struct {
	ID        string  `json:"id" gorm:"primaryKey;size:191"`
	BuyBikeID string  `json:"buybike_id" gorm:"not null;size:191"`
	BuyBike   BuyBike `json:"buybike" gorm:"foreignKey:BuyBikeID"`

	UserID *string `json:"user_id" gorm:"size:191"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`

	Amount       float64 `json:"amount" gorm:"type:decimal(10,2);default:0"`
	GSTAmount    float64 `json:"gst_amount" gorm:"column:gst_amount;type:decimal(10,2);default:0"`
	TestDriveFee float64 `json:"test_drive_fee" gorm:"type:decimal(10,2);default:0"`
	TotalAmount  float64 `json:"total_amount" gorm:"type:decimal(12,2);default:0"`

	Status BookingStatus `json:"status" gorm:"size:20;default:'created'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBookingAmounts derives the monetary fields of a booking from the
// listing price at booking time. Amounts are never recomputed afterwards.
func ComputeBookingAmounts(price uint, testDriveFee float64) (amount, gstAmount, totalAmount float64) {
	amount = float64(price)
	gstAmount = Round2(amount * GSTRate)
	totalAmount = Round2(amount + gstAmount + testDriveFee)
	return amount, gstAmount, totalAmount
}
