package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/handlers"
	"github.com/sy4k1/gla-it-project/internal/mailer"
	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/internal/server"
	"github.com/sy4k1/gla-it-project/internal/services"
	"github.com/sy4k1/gla-it-project/pkg/auth"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := database.NewDatabase(db)
	cache := services.NewSessionCache(nil)
	credentials := services.NewCredentialService(store, cache)
	sessions := services.NewSessionService(store, cache)
	graph := services.NewGraphService(store)
	notifications := services.NewNotificationService(store)
	content := services.NewContentService(store)

	accountH := handlers.NewAccountHandler(credentials, sessions, graph, notifications, mailer.LogMailer{})
	postH := handlers.NewPostHandler(content, sessions, graph)

	r := gin.New()
	server.APIEndpoints(r, accountH, postH)
	return r, db
}

// postJSON performs a request and decodes the response envelope.
func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// logical failures still answer 200
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func seedHTTPAccount(t *testing.T, db *gorm.DB, name, email string) *models.Account {
	t.Helper()
	account := &models.Account{Name: name, Email: email, Password: auth.HashPassword("admin123")}
	require.NoError(t, db.Create(account).Error)
	return account
}

func loginFor(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	envelope := postJSON(t, r, "/api/account/login", gin.H{"email": email, "password": "admin123"})
	require.EqualValues(t, 1, envelope["code"])
	data := envelope["data"].(map[string]interface{})
	return data["access_token"].(string)
}
