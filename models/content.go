package models

import (
	"time"
)

// Marketing content entities. Admins author these records; the API only
// reads them, either as the latest-active record or as an ordered visible
// list. Multiple historical records may exist for the "singleton" sections;
// only the latest active one is surfaced.

type HeroSection struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Title             string `json:"title" gorm:"not null;size:255"`
	Description       string `json:"description" gorm:"type:text"`
	ButtonText        string `json:"button_text" gorm:"size:50;default:'Buy Now'"`
	TrapezoidImageURL string `json:"trapezoid_image" gorm:"size:500"`

	BikeImages []HeroBikeImage `json:"bike_images" gorm:"foreignKey:HeroSectionID"`
}

type HeroBikeImage struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	HeroSectionID uint   `json:"hero_section_id" gorm:"not null"`
	ImageURL      string `json:"image" gorm:"size:500"`
	OrderNo       int    `json:"order" gorm:"default:0"`
}

type InfoSection struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Description  string `json:"description" gorm:"type:text"`
	ButtonText   string `json:"button_text" gorm:"size:50;default:'Read More'"`
	BikeImageURL string `json:"bike_image" gorm:"size:500"`
	OrderNo      int    `json:"order" gorm:"default:0"`
}

// Arrow directions for support features.
const (
	ArrowUp   = "up"
	ArrowDown = "down"
)

type SupportFeature struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Title         string `json:"title" gorm:"not null;size:120"`
	Subtitle      string `json:"subtitle" gorm:"size:140"`
	Description   string `json:"description" gorm:"type:text"`
	ImageURL      string `json:"image" gorm:"size:500"`
	ArrowImageURL string `json:"arrow_image" gorm:"size:500"`
	Arrow         string `json:"arrow" gorm:"size:4;default:'up'"`
	OrderNo       int    `json:"order" gorm:"default:0"`
}

type HomepageBanner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;size:255"`
	LogoURL   string    `json:"logo" gorm:"size:500"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	Stats []StatItem `json:"stats" gorm:"foreignKey:BannerID"`
}

type StatItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	BannerID  uint   `json:"banner_id" gorm:"not null"`
	IconURL   string `json:"icon" gorm:"size:500"`
	Value     string `json:"value" gorm:"not null;size:64"`
	Caption   string `json:"caption" gorm:"not null;size:128"`
	OrderNo   int    `json:"order" gorm:"default:0"`
	IsVisible bool   `json:"is_visible"`
}

type TestimonialsSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;default:'Real Stories From our Happy Customer'"`
	Subtitle  string    `json:"subtitle" gorm:"size:512"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:128"`
	Role      string    `json:"role" gorm:"size:128"`
	Quote     string    `json:"quote" gorm:"type:text;not null"`
	ImageURL  string    `json:"image" gorm:"size:500"`
	IsVisible bool      `json:"is_visible"`
	OrderNo   int       `json:"order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

type TrustedSection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;default:'Trusted by Riders Like You'"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image" gorm:"size:500"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type FAQ struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Question string `json:"question" gorm:"not null;size:255"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	OrderNo  int    `json:"order" gorm:"default:0"`
	IsActive bool   `json:"is_active"`
}

type Footer struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	LogoURL         string `json:"logo" gorm:"size:500"`
	BikeImageURL    string `json:"bike_image" gorm:"size:500"`
	WhatsappIconURL string `json:"whatsapp_icon" gorm:"size:500"`
	YoutubeIconURL  string `json:"youtube_icon" gorm:"size:500"`
	InstagramIcon   string `json:"instagram_icon" gorm:"size:500"`
	FacebookIconURL string `json:"facebook_icon" gorm:"size:500"`
	MapIconURL      string `json:"map_icon" gorm:"size:500"`
	InternetIconURL string `json:"internet_icon" gorm:"size:500"`
	PhoneIconURL    string `json:"phone_icon" gorm:"size:500"`

	AddressLine1 string `json:"address_line1" gorm:"size:200;default:'51, Rajaji Street'"`
	AddressLine2 string `json:"address_line2" gorm:"size:200;default:'GST Road'"`
	AddressLine3 string `json:"address_line3" gorm:"size:200;default:'Chengalpattu-603104'"`
	Website      string `json:"website" gorm:"size:200;default:'https://www.DriveRp.in'"`
	Phone        string `json:"phone" gorm:"size:20;default:'+91 987 952 1234'"`
}

// About section slots
const (
	AboutSection1 = "section1"
	AboutSection2 = "section2"
	AboutSection3 = "section3"
)

type AboutSection struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Section            string `json:"section" gorm:"uniqueIndex;not null;size:20"`
	Title              string `json:"title" gorm:"size:200"`
	Description        string `json:"description" gorm:"type:text"`
	ImageURL           string `json:"image" gorm:"size:500"`
	OverlayTitle       string `json:"overlay_title" gorm:"size:100"`
	OverlayDescription string `json:"overlay_description" gorm:"type:text"`

	Images []AboutSectionImage `json:"images" gorm:"foreignKey:AboutSectionID"`
}

type AboutSectionImage struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	AboutSectionID uint   `json:"about_section_id" gorm:"not null"`
	ImageURL       string `json:"image" gorm:"size:500"`
}

type SellBikePage struct {
	ID                     uint   `json:"id" gorm:"primaryKey"`
	TopBannerImageURL      string `json:"top_banner_image" gorm:"size:500"`
	TopBannerText          string `json:"top_banner_text" gorm:"type:text"`
	SecondBannerImageURL   string `json:"second_banner_image" gorm:"size:500"`
	SecondBannerTopText    string `json:"second_banner_top_text" gorm:"type:text"`
	SecondBannerBottomText string `json:"second_banner_bottom_text" gorm:"size:200"`

	// comma separated option lists for the sell form dropdowns
	BrandOptions   string `json:"brand_options" gorm:"type:text"`
	ModelOptions   string `json:"model_options" gorm:"type:text"`
	VariantOptions string `json:"variant_options" gorm:"type:text"`
	YearOptions    string `json:"year_options" gorm:"type:text"`
	KmsOptions     string `json:"kms_options" gorm:"type:text"`
	OwnerOptions   string `json:"owner_options" gorm:"type:text"`

	ThirdTitle string `json:"third_title" gorm:"size:200"`

	HowItWorks []HowItWorksStep `json:"how_it_works" gorm:"foreignKey:PageID"`
}

type HowItWorksStep struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PageID   uint   `json:"page_id" gorm:"not null"`
	Title    string `json:"title" gorm:"not null;size:100"`
	ImageURL string `json:"image" gorm:"size:500"`
}

type LoginPageContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;default:'Log in'"`
	ImageURL  string    `json:"image" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

type LastSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Heading   string    `json:"heading" gorm:"size:255"`
	Subtitle  string    `json:"subtitle" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []LastSectionImage `json:"images" gorm:"foreignKey:SectionID"`
}

type LastSectionImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SectionID uint      `json:"section_id" gorm:"not null"`
	ImageURL  string    `json:"image" gorm:"size:500"`
	Title     string    `json:"title" gorm:"size:255"`
	OrderNo   int       `json:"order" gorm:"default:0"`
	AltText   string    `json:"alt_text" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
