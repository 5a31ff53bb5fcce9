package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"driverp-api/config"
	"driverp-api/models"
	"driverp-api/routes"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite allows one writer; a single pooled connection keeps parallel
	// handler transactions queued instead of failing with a busy error
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.BuyBike{},
		&models.Booking{},
		&models.Contact{},
		&models.HeroSection{},
		&models.HeroBikeImage{},
		&models.InfoSection{},
		&models.SupportFeature{},
		&models.HomepageBanner{},
		&models.StatItem{},
		&models.TestimonialsSection{},
		&models.Testimonial{},
		&models.TrustedSection{},
		&models.FAQ{},
		&models.Footer{},
		&models.AboutSection{},
		&models.AboutSectionImage{},
		&models.SellBikePage{},
		&models.HowItWorksStep{},
		&models.LoginPageContent{},
		&models.LastSection{},
		&models.LastSectionImage{},
	)
	require.NoError(t, err)

	return db
}

// fakeMailer records sends and can be primed to fail.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []string
	fail   bool
	errMsg string
}

func (fm *fakeMailer) record(kind string) error {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.fail {
		if fm.errMsg == "" {
			fm.errMsg = "smtp unavailable"
		}
		return fmt.Errorf("failed to send email: %s", fm.errMsg)
	}
	fm.sent = append(fm.sent, kind)
	return nil
}

func (fm *fakeMailer) SendContactConfirmation(name, email, reason, message string) error {
	return fm.record("contact:" + email)
}

func (fm *fakeMailer) SendSignupWelcome(username, email string) error {
	return fm.record("welcome:" + email)
}

func (fm *fakeMailer) SendAdminSignupNotice(username, email string) error {
	return fm.record("admin:" + email)
}

func (fm *fakeMailer) sentKinds() []string {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	out := make([]string, len(fm.sent))
	copy(out, fm.sent)
	return out
}

func newTestRouter(db *gorm.DB, mailer *fakeMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: "test-secret"}
	routes.SetupRoutes(r, db, cfg, mailer)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedBike(t *testing.T, db *gorm.DB, bike models.BuyBike) models.BuyBike {
	t.Helper()
	if bike.ID == "" {
		bike.ID = uuid.New().String()
	}
	require.NoError(t, db.Create(&bike).Error)
	return bike
}
