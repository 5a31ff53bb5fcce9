package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"driverp-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
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

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the catalog filter's hottest predicates
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_buy_bikes_brand_year ON buy_bikes(brand, year)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for buy_bikes brand/year: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_buy_bikes_price ON buy_bikes(price)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for buy_bikes price: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_buybike_created ON bookings(buy_bike_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for bookings: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var bikeCount int64
	db.Model(&models.BuyBike{}).Count(&bikeCount)

	if bikeCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	chengalpattu := models.Location{
		ID:   "loc-chengalpattu",
		Name: "Chengalpattu",
	}
	if err := db.Create(&chengalpattu).Error; err != nil {
		fmt.Printf("Warning: Could not create seed location: %v\n", err)
	}

	year2020 := 2020
	year2018 := 2018
	kms12000 := 12000
	kms34000 := 34000

	testBikes := []models.BuyBike{
		{
			ID:           "bike-1",
			Title:        "Royal Enfield Classic 350",
			Description:  "Single owner, showroom condition.",
			Price:        165000,
			Brand:        "Royal Enfield",
			BikeModel:    "Classic 350",
			Year:         &year2020,
			Kilometers:   &kms12000,
			FuelType:     "petrol",
			Color:        "black",
			Category:     "cruiser",
			Owners:       models.OwnerFirst,
			Transmission: models.TransmissionManual,
			LocationID:   &chengalpattu.ID,
		},
		{
			ID:           "bike-2",
			Title:        "Honda CB Shine",
			Description:  "Well maintained commuter.",
			Price:        48000,
			Brand:        "Honda",
			BikeModel:    "CB Shine",
			Year:         &year2018,
			Kilometers:   &kms34000,
			FuelType:     "petrol",
			Color:        "red",
			Category:     "commuter",
			Owners:       models.OwnerSecond,
			Transmission: models.TransmissionManual,
			LocationID:   &chengalpattu.ID,
		},
	}

	for _, bike := range testBikes {
		if err := db.Create(&bike).Error; err != nil {
			fmt.Printf("Warning: Could not create test bike %s: %v\n", bike.Title, err)
		}
	}

	testFAQs := []models.FAQ{
		{Question: "Are the bikes inspected?", Answer: "Every bike goes through a multi-point inspection before listing.", OrderNo: 0, IsActive: true},
		{Question: "Can I book a test drive?", Answer: "Yes, a refundable test drive fee applies.", OrderNo: 1, IsActive: true},
	}
	for _, faq := range testFAQs {
		if err := db.Create(&faq).Error; err != nil {
			fmt.Printf("Warning: Could not create test FAQ: %v\n", err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
