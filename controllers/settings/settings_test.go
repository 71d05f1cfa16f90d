package settingsController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"skilldev/config"
	"skilldev/database"
	"skilldev/models"
	settingsRoutes "skilldev/routers/settingsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter uint64

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{}

	id := atomic.AddUint64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:settingstest%d?mode=memory&cache=shared", id)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	app := fiber.New()
	settingsRoutes.SetupSettingsRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestSaveSettings_InsertThenUpdate(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "POST", "/api/settings",
		`{"userId":1,"darkModeEnabled":true,"selectedLanguage":"Filipino"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Settings saved successfully", body["message"])

	status, body = doJSON(t, app, "POST", "/api/settings",
		`{"userId":1,"darkModeEnabled":false,"textSize":1.5}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Settings updated successfully", body["message"])

	var count int64
	database.Database.Db.Model(&models.Setting{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count, "upsert must keep a single row per user")

	var stored models.Setting
	require.NoError(t, database.Database.Db.Where("user_id = ?", 1).First(&stored).Error)
	assert.False(t, stored.DarkModeEnabled)
	assert.Equal(t, 1.5, stored.TextSize)
	// Omitted fields fall back to the defaults, not the previous value.
	assert.Equal(t, "English", stored.SelectedLanguage)
}

func TestSaveSettings_DefaultsApplied(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "POST", "/api/settings", `{"userId":7}`)
	assert.Equal(t, http.StatusCreated, status)

	var stored models.Setting
	require.NoError(t, database.Database.Db.Where("user_id = ?", 7).First(&stored).Error)
	assert.True(t, stored.NotificationsEnabled)
	assert.True(t, stored.EmailNotificationsEnabled)
	assert.False(t, stored.DarkModeEnabled)
	assert.Equal(t, "English", stored.SelectedLanguage)
	assert.Equal(t, 1.0, stored.TextSize)
}

func TestSaveSettings_RowInsertedOutOfBand(t *testing.T) {
	app := setupApp(t)

	// A row created between validation and the insert, as when two
	// first saves race. The save must update it, not hit the unique
	// index and fail.
	require.NoError(t, database.Database.Db.Create(&models.Setting{
		UserID:           3,
		SelectedLanguage: "English",
		TextSize:         1.0,
	}).Error)

	status, body := doJSON(t, app, "POST", "/api/settings",
		`{"userId":3,"selectedLanguage":"Filipino"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Settings updated successfully", body["message"])

	var count int64
	database.Database.Db.Model(&models.Setting{}).Where("user_id = ?", 3).Count(&count)
	assert.Equal(t, int64(1), count)

	var stored models.Setting
	require.NoError(t, database.Database.Db.Where("user_id = ?", 3).First(&stored).Error)
	assert.Equal(t, "Filipino", stored.SelectedLanguage)
}

func TestSaveSettings_MissingUserID(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "POST", "/api/settings", `{"darkModeEnabled":true}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Incomplete data provided", body["message"])
}

func TestGetSettings(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "GET", "/api/settings?userId=1", "")
	assert.Equal(t, http.StatusNotFound, status)

	_, _ = doJSON(t, app, "POST", "/api/settings", `{"userId":1,"selectedLanguage":"Filipino"}`)

	status, body := doJSON(t, app, "GET", "/api/settings?userId=1", "")
	assert.Equal(t, http.StatusOK, status)
	settings := body["settings"].(map[string]interface{})
	assert.Equal(t, "Filipino", settings["selectedLanguage"])
}
