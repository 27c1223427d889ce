package models

import "time"

// Expenditure is an append-only cost entry for a car. The current
// expenditure of a car is its most recently created row. Absent cost
// categories are stored as 0, not NULL.
type Expenditure struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	CarID     uint      `gorm:"index;not null" json:"carId"`

	Maintenance float64 `gorm:"default:0" json:"maintenance"`
	Denting     float64 `gorm:"default:0" json:"denting"`
	Painting    float64 `gorm:"default:0" json:"painting"`
	Accessories float64 `gorm:"default:0" json:"accessories"`
	Machine     float64 `gorm:"default:0" json:"machine"`
}
