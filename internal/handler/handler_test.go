package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CampusVault/config"
	"CampusVault/internal/handler"
	"CampusVault/internal/repo"
	"CampusVault/internal/service"
	"CampusVault/internal/storage"
	"CampusVault/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key",
		AccessTokenTTL:    time.Hour,
		RefreshTokenTTL:   24 * time.Hour,
		AllowedExtensions: []string{"pdf", "docx", "pptx", "txt", "jpg", "png"},
	}
}

// newTestApp wires the full router over an in-memory database and a
// temporary upload directory.
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repo.AutoMigrateAll(db))

	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	cfg := testConfig()
	users := service.NewUserService(db, nil)
	resources := service.NewResourceService(db, store, nil, cfg.AllowedExtensions)
	groups := service.NewGroupService(db)
	messages := service.NewMessageService(db)

	return router.InitRouter(cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(users, cfg),
		Users:     handler.NewUserHandler(users),
		Resources: handler.NewResourceHandler(resources),
		Groups:    handler.NewGroupHandler(groups),
		Messages:  handler.NewMessageHandler(messages),
	})
}

func doJSON(app *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates an account and returns its tokens and user id.
func registerAndLogin(t *testing.T, app *gin.Engine, email, username string) (access, refresh string, userID uint64) {
	t.Helper()
	w := doJSON(app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":     email,
		"username":  username,
		"full_name": "Test User",
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	access = body["access_token"].(string)
	refresh = body["refresh_token"].(string)
	user := body["user"].(map[string]interface{})
	userID = uint64(user["id"].(float64))
	return access, refresh, userID
}

// uploadFile posts a multipart upload and returns the response recorder.
func uploadFile(t *testing.T, app *gin.Engine, token, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "Uploaded Notes"))
	require.NoError(t, mw.WriteField("category", "Notes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resources", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}
