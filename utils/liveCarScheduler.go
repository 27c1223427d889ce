package utils

import (
	"log"
	"morya/database"
	"morya/models"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[LIVE-CAR-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileLiveListings removes live listings that point at a car which
// is already sold. A sale clears its live row in the same transaction,
// so this only catches rows written before that guarantee existed or by
// hand.
func reconcileLiveListings() {
	db := database.Database.Db

	var orphans []models.LiveCar
	if err := db.Joins("JOIN cars ON cars.id = live_cars.car_id").
		Where("cars.sold = ?", true).
		Find(&orphans).Error; err != nil {
		logScheduler("Error fetching orphaned live listings: " + err.Error())
		return
	}

	for _, listing := range orphans {
		if err := db.Delete(&models.LiveCar{}, listing.ID).Error; err != nil {
			logScheduler("Error removing orphaned live listing: " + err.Error())
			continue
		}
		logScheduler("Removed live listing for sold car")
	}
}

// StartLiveCarScheduler runs the live-listing reconciliation sweep once
// an hour.
func StartLiveCarScheduler() {
	c := cron.New()

	_, err := c.AddFunc("@hourly", reconcileLiveListings)
	if err != nil {
		logScheduler("Failed to schedule reconciliation: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Live car scheduler started")
}
