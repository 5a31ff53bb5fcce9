package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverp-api/models"
	"driverp-api/utils"
)

type BookingController struct {
	db *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{db: db}
}

type CreateBookingRequest struct {
	BuyBikeID    string   `json:"buybike" binding:"required"`
	TestDriveFee *float64 `json:"test_drive_fee"`
}

var errAlreadyBooked = errors.New("bike is already booked")

// CreateBooking computes the monetary fields server-side from the listing
// price, persists the booking, and marks the bike unavailable. The insert and
// the availability flip run in one transaction, and the flip is conditional on
// is_booked being false, so a second booking against the same bike is rejected
// rather than silently stacked.
func (bkc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	testDriveFee := 0.0
	if req.TestDriveFee != nil {
		testDriveFee = *req.TestDriveFee
	}
	if testDriveFee < 0 {
		utils.SendError(c, http.StatusBadRequest, "test_drive_fee must not be negative")
		return
	}

	var bike models.BuyBike
	if err := bkc.db.First(&bike, "id = ?", req.BuyBikeID).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid buybike reference")
		return
	}

	amount, gstAmount, totalAmount := models.ComputeBookingAmounts(bike.Price, testDriveFee)

	booking := models.Booking{
		ID:           uuid.New().String(),
		BuyBikeID:    bike.ID,
		Amount:       amount,
		GSTAmount:    gstAmount,
		TestDriveFee: testDriveFee,
		TotalAmount:  totalAmount,
		Status:       models.BookingStatusCreated,
	}

	if userID := c.GetString("user_id"); userID != "" {
		booking.UserID = &userID
	}

	err := bkc.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.BuyBike{}).
			Where("id = ? AND is_booked = ?", bike.ID, false).
			Update("is_booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyBooked
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyBooked) {
			utils.SendDetail(c, http.StatusConflict, "Bike is already booked")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	// re-read with the bike joined for the payment page
	if err := bkc.db.Preload("BuyBike").Preload("BuyBike.Location").First(&booking, "id = ?", booking.ID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to load booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (bkc *BookingController) GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := bkc.db.Preload("BuyBike").Preload("BuyBike.Location").First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDetail(c, http.StatusNotFound, "Not found.")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ConfirmPayment flips a created booking to paid. No payment method or
// reference is recorded and no amounts are recomputed.
func (bkc *BookingController) ConfirmPayment(c *gin.Context) {
	var booking models.Booking
	if err := bkc.db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDetail(c, http.StatusNotFound, "Not found.")
		return
	}

	if booking.Status == models.BookingStatusPaid {
		utils.SendDetail(c, http.StatusBadRequest, "Already paid")
		return
	}

	if err := bkc.db.Model(&booking).Update("status", models.BookingStatusPaid).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	utils.SendDetail(c, http.StatusOK, "Booking marked as paid")
}
