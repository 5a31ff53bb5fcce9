package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driverp-api/models"
	"driverp-api/services"
	"driverp-api/utils"
)

type ContactController struct {
	db     *gorm.DB
	mailer services.Mailer
}

func NewContactController(db *gorm.DB, mailer services.Mailer) *ContactController {
	return &ContactController{db: db, mailer: mailer}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
	FindUs  string `json:"find_us" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact persists the inquiry first and then sends the confirmation
// mail. A send failure is surfaced as 500 but the inquiry row stays committed.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email address"})
		return
	}
	if !models.IsValidContactReason(req.Reason) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid reason"})
		return
	}
	if !models.IsValidFindUsChoice(req.FindUs) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid find_us choice"})
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Reason:  req.Reason,
		FindUs:  req.FindUs,
		Message: req.Message,
	}

	if err := cc.db.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save contact"})
		return
	}

	if err := cc.mailer.SendContactConfirmation(req.Name, req.Email, req.Reason, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent"})
}

// GetContacts lists submitted inquiries, newest first (admin view).
func (cc *ContactController) GetContacts(c *gin.Context) {
	contacts := []models.Contact{}
	if err := cc.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}
