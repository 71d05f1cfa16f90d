package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"skilldev/config"
	"skilldev/database"
	"skilldev/models"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[UPLOAD-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepStagedUploads removes upload-directory files older than 24 hours
// that no database row references. Registration stages files to disk
// before the duplicate-email check, so a crashed request can leave an
// upload behind with no owning row.
func SweepStagedUploads() {
	db := database.Database.Db
	dir := config.AppConfig.UploadDir

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logSweeper("Error reading upload dir: " + err.Error())
		}
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		var userRefs int64
		db.Model(&models.User{}).
			Where("id_proof_path = ? OR proof_clearance_path = ? OR profileImage_path = ?", path, path, path).
			Count(&userRefs)
		if userRefs > 0 {
			continue
		}

		var certRefs int64
		db.Model(&models.Certification{}).Where("image_path = ?", path).Count(&certRefs)
		if certRefs > 0 {
			continue
		}

		if err := os.Remove(path); err != nil {
			logSweeper("Failed to remove " + path + ": " + err.Error())
			continue
		}
		logSweeper("Removed orphaned upload " + path)
	}
}

// StartUploadSweeper schedules the hourly orphaned-upload sweep.
func StartUploadSweeper() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", SweepStagedUploads); err != nil {
		log.Fatalf("Failed to schedule upload sweeper: %v", err)
	}
	c.Start()
	logSweeper("Upload sweeper scheduled (hourly)")
	return c
}
