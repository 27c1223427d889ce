package models

import "time"

// LiveCar is the side table for cars currently offered for sale. The
// live price overrides the car's base price while the row exists; the
// unique index keeps at most one row per car.
type LiveCar struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CarID     uint      `gorm:"uniqueIndex;not null" json:"carId"`
	LivePrice float64   `json:"livePrice"`
	LiveStart time.Time `gorm:"autoCreateTime" json:"liveStart"`
}
