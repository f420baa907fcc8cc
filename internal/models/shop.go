package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One shop per owner account.
	OwnerID uint `gorm:"uniqueIndex" json:"owner_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:500" json:"description"`

	// Weekly booking window: weekday codes ("mon".."sun") plus
	// opening/closing time of day in "15:04" form. The day range may
	// wrap across the week boundary (e.g. fri..mon).
	OpeningDay  string `gorm:"size:3;not null" json:"opening_day"`
	ClosingDay  string `gorm:"size:3;not null" json:"closing_day"`
	OpeningTime string `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
