package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driverp-api/models"
	"driverp-api/utils"
)

type BikeController struct {
	db *gorm.DB
}

func NewBikeController(db *gorm.DB) *BikeController {
	return &BikeController{db: db}
}

// GetBikes returns the catalog, narrowed by the closed filter key set,
// optionally searched and ordered. Read-only; re-derived on every call.
func (bc *BikeController) GetBikes(c *gin.Context) {
	q := bc.db.Model(&models.BuyBike{}).
		Select("buy_bikes.*").
		Joins("LEFT JOIN locations ON locations.id = buy_bikes.location_id").
		Preload("Location")

	q, err := ApplyBikeFilters(c.Request.URL.Query(), q)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	bikes := []models.BuyBike{}
	if err := q.Find(&bikes).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bikes")
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (bc *BikeController) GetBike(c *gin.Context) {
	var bike models.BuyBike
	if err := bc.db.Preload("Location").First(&bike, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendDetail(c, http.StatusNotFound, "Not found.")
		return
	}

	c.JSON(http.StatusOK, bike)
}
