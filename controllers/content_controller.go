package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driverp-api/models"
	"driverp-api/utils"
)

// ContentController serves the admin-curated marketing content. Every handler
// is one of two read patterns: latest-active singleton or ordered-visible
// list. Nothing here mutates state.
type ContentController struct {
	db *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{db: db}
}

func (cc *ContentController) GetHeroSections(c *gin.Context) {
	sections := []models.HeroSection{}
	if err := cc.db.Preload("BikeImages", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_no")
	}).Find(&sections).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch hero sections")
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (cc *ContentController) GetInfoSections(c *gin.Context) {
	sections := []models.InfoSection{}
	if err := cc.db.Order("order_no").Find(&sections).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch info sections")
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (cc *ContentController) GetSupportFeatures(c *gin.Context) {
	features := []models.SupportFeature{}
	if err := cc.db.Order("order_no").Find(&features).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch support features")
		return
	}
	c.JSON(http.StatusOK, features)
}

// GetHomepageBanner returns the latest active banner with its visible stats.
// An inactive banner is never surfaced, however recent.
func (cc *ContentController) GetHomepageBanner(c *gin.Context) {
	var banner models.HomepageBanner
	err := cc.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Preload("Stats", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_visible = ?", true).Order("order_no")
		}).
		First(&banner).Error
	if err != nil {
		utils.SendDetail(c, http.StatusNotFound, "No banner configured.")
		return
	}
	c.JSON(http.StatusOK, banner)
}

// GetTestimonials returns the latest active section header together with the
// visible testimonials in display order.
func (cc *ContentController) GetTestimonials(c *gin.Context) {
	var section *models.TestimonialsSection
	var found models.TestimonialsSection
	if err := cc.db.Where("is_active = ?", true).Order("created_at DESC").First(&found).Error; err == nil {
		section = &found
	}

	testimonials := []models.Testimonial{}
	if err := cc.db.Where("is_visible = ?", true).Order("order_no, created_at").Find(&testimonials).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"section":      section,
		"testimonials": testimonials,
	})
}

func (cc *ContentController) GetTrustedSection(c *gin.Context) {
	var section models.TrustedSection
	if err := cc.db.Where("is_active = ?", true).Order("created_at DESC").First(&section).Error; err != nil {
		utils.SendNotConfigured(c)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (cc *ContentController) GetFAQs(c *gin.Context) {
	faqs := []models.FAQ{}
	if err := cc.db.Where("is_active = ?", true).Order("order_no, id").Find(&faqs).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (cc *ContentController) GetLastSection(c *gin.Context) {
	var section models.LastSection
	err := cc.db.Order("created_at DESC").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_no, id")
		}).
		First(&section).Error
	if err != nil {
		utils.SendDetail(c, http.StatusNotFound, "No sections found.")
		return
	}
	c.JSON(http.StatusOK, section)
}

func (cc *ContentController) GetAboutSections(c *gin.Context) {
	sections := []models.AboutSection{}
	if err := cc.db.Preload("Images").Order("section").Find(&sections).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch about sections")
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (cc *ContentController) GetFooter(c *gin.Context) {
	var footer models.Footer
	if err := cc.db.Order("id DESC").First(&footer).Error; err != nil {
		utils.SendNotConfigured(c)
		return
	}
	c.JSON(http.StatusOK, footer)
}

func (cc *ContentController) GetSellBikePage(c *gin.Context) {
	var page models.SellBikePage
	if err := cc.db.Preload("HowItWorks").Order("id").First(&page).Error; err != nil {
		utils.SendNotConfigured(c)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (cc *ContentController) GetLoginPageContent(c *gin.Context) {
	var content models.LoginPageContent
	if err := cc.db.Order("id DESC").First(&content).Error; err != nil {
		utils.SendNotConfigured(c)
		return
	}
	c.JSON(http.StatusOK, content)
}
