package models

import (
	"time"
)

// ContactReasons is the closed list of inquiry reasons the contact form accepts.
var ContactReasons = []string{
	"General Enquiry",
	"Buy a Bike",
	"Sell a Bike",
	"Exchange a Bike",
	"RTO Service",
	"other",
}

// FindUsChoices is the closed list of "how did you find us" answers.
var FindUsChoices = []string{
	"google",
	"Instagram",
	"Youtube",
	"Website",
	"Facebook",
	"OLX",
	"Walk-in",
}

type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:255"`
	Phone     string    `json:"phone" gorm:"not null;size:20"`
	Reason    string    `json:"reason" gorm:"not null;size:50"`
	FindUs    string    `json:"find_us" gorm:"not null;size:50"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidContactReason(reason string) bool {
	for _, r := range ContactReasons {
		if r == reason {
			return true
		}
	}
	return false
}

func IsValidFindUsChoice(choice string) bool {
	for _, c := range FindUsChoices {
		if c == choice {
			return true
		}
	}
	return false
}
