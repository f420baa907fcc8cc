package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference handed back to the booking client.
	Ref string `gorm:"size:36;uniqueIndex;not null" json:"ref"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Deleting the shop keeps the client's booking history.
	ShopID *uint `json:"shop_id"`
	Shop   *Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop,omitempty"`

	StartTime   time.Time `gorm:"index" json:"start_time"`
	DurationMin int       `json:"duration_min"`
	// EndTime is always StartTime + DurationMin; stored so the conflict
	// query can compare it in SQL.
	EndTime time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Note string `gorm:"size:666" json:"note"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
