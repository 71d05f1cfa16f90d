package chatController_test

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
	chatRoutes "skilldev/routers/chatRoutes"

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
	dsn := fmt.Sprintf("file:chattest%d?mode=memory&cache=shared", id)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	app := fiber.New()
	chatRoutes.SetupChatRoutes(app)
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

func TestSendMessage_ReturnsStoredRow(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "POST", "/api/chat", `{"sender_id":1,"user_id":2,"message":"hi"}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Message sent successfully", body["message"])

	data := body["message_data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["sender_id"])
	assert.Equal(t, float64(2), data["user_id"])
	assert.Equal(t, "hi", data["message"])
	assert.Nil(t, data["reply_to"])
	assert.NotEmpty(t, data["created_at"])
	assert.Equal(t, data["created_at"], data["timestamp"])

	var stored models.Message
	require.NoError(t, database.Database.Db.First(&stored).Error)
	assert.Equal(t, float64(stored.ID), data["id"], "echoed id must match the inserted row")
}

func TestSendMessage_WithReplyTo(t *testing.T) {
	app := setupApp(t)

	_, first := doJSON(t, app, "POST", "/api/chat", `{"sender_id":1,"user_id":2,"message":"hi"}`)
	firstID := first["message_data"].(map[string]interface{})["id"].(float64)

	status, body := doJSON(t, app, "POST", "/api/chat",
		fmt.Sprintf(`{"sender_id":2,"user_id":1,"message":"hello","reply_to":%d}`, int(firstID)))
	assert.Equal(t, http.StatusCreated, status)

	data := body["message_data"].(map[string]interface{})
	assert.Equal(t, firstID, data["reply_to"])
}

func TestSendMessage_MissingFields(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "POST", "/api/chat", `{"sender_id":1,"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestGetMessages_FiltersBySenderOrRecipient(t *testing.T) {
	app := setupApp(t)

	seed := []models.Message{
		{SenderID: 1, UserID: 2, Message: "first"},
		{SenderID: 2, UserID: 1, Message: "second"},
		{SenderID: 3, UserID: 4, Message: "other thread"},
	}
	for i := range seed {
		require.NoError(t, database.Database.Db.Create(&seed[i]).Error)
	}

	status, body := doJSON(t, app, "GET", "/api/chat?user_id=1", "")
	assert.Equal(t, http.StatusOK, status)

	messages := body["messages"].([]interface{})
	require.Len(t, messages, 2)
	// Oldest first.
	assert.Equal(t, "first", messages[0].(map[string]interface{})["message"])
	assert.Equal(t, "second", messages[1].(map[string]interface{})["message"])
}

func TestGetMessages_EmptyIsOK(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "GET", "/api/chat?user_id=1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No messages found", body["message"])
	assert.Empty(t, body["messages"])
}

func TestGetMessages_MissingUserID(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "GET", "/api/chat", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
