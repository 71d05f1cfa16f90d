package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"skilldev/config"
	"skilldev/database"
	"skilldev/models"
	"skilldev/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var sweeperDBCounter uint64

func setupSweeper(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}

	id := atomic.AddUint64(&sweeperDBCounter, 1)
	dsn := fmt.Sprintf("file:sweepertest%d?mode=memory&cache=shared", id)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return dir
}

func writeUpload(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestSweepStagedUploads(t *testing.T) {
	dir := setupSweeper(t)

	orphaned := writeUpload(t, dir, "orphaned.png", 48*time.Hour)
	fresh := writeUpload(t, dir, "fresh.png", time.Hour)
	claimed := writeUpload(t, dir, "claimed.png", 48*time.Hour)
	certImage := writeUpload(t, dir, "cert.png", 48*time.Hour)

	require.NoError(t, database.Database.Db.Create(&models.User{
		Username:    "owner",
		Email:       "owner@example.com",
		Password:    "hash",
		IDProofPath: claimed,
	}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Certification{
		ImagePath: certImage,
	}).Error)

	utils.SweepStagedUploads()

	_, err := os.Stat(orphaned)
	assert.True(t, os.IsNotExist(err), "old unreferenced upload must be removed")

	for _, path := range []string{fresh, claimed, certImage} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "%s must survive the sweep", path)
	}
}

func TestSweepStagedUploads_MissingDirIsNoop(t *testing.T) {
	setupSweeper(t)
	config.AppConfig.UploadDir = filepath.Join(t.TempDir(), "does-not-exist")

	// Must not panic or create the directory.
	utils.SweepStagedUploads()
	_, err := os.Stat(config.AppConfig.UploadDir)
	assert.True(t, os.IsNotExist(err))
}
