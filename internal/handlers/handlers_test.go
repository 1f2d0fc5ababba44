package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garage-desk/internal/auth"
	"garage-desk/internal/config"
	"garage-desk/internal/database"
	"garage-desk/internal/handlers"
	"garage-desk/internal/notify"
	"garage-desk/internal/server"
	"garage-desk/internal/storage"
	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	t         *testing.T
	router    *gin.Engine
	db        *gorm.DB
	token     string
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	uploadDir := t.TempDir()
	cfg := &config.Config{
		Env:             "test",
		ServerPort:      "0",
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		AdminUsername:   "admin",
		AdminPassword:   "admin123",
		StorageProvider: config.StorageProviderLocal,
		UploadDir:       uploadDir,
	}

	files, err := storage.NewLocal(uploadDir)
	require.NoError(t, err)

	log, _ := logtest.NewNullLogger()

	clients := store.NewClientStore(db)
	vehicles := store.NewVehicleStore(db)
	documents := store.NewDocumentStore(db)
	notifications := store.NewNotificationStore(db)
	events := notify.NewRecorder(notifications, log)

	api, err := handlers.New(clients, vehicles, documents, notifications, events, files, cfg, log)
	require.NoError(t, err)

	token, _, err := auth.GenerateToken(cfg.JWTSecret, cfg.AdminUsername, cfg.TokenTTL)
	require.NoError(t, err)

	return &testEnv{
		t:         t,
		router:    server.NewRouter(cfg, api),
		db:        db,
		token:     token,
		uploadDir: uploadDir,
	}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+e.token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doRaw(req *http.Request) *httptest.ResponseRecorder {
	e.t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) createClient(name, phone string) map[string]interface{} {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/clients", gin.H{"name": name, "phone": phone})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	var body map[string]interface{}
	decode(e.t, w, &body)
	return body
}

func (e *testEnv) createVehicle(clientID float64, number string, extra gin.H) map[string]interface{} {
	e.t.Helper()
	payload := gin.H{
		"client_id":      clientID,
		"vehicle_number": number,
		"date":           "2024-03-10",
	}
	for k, v := range extra {
		payload[k] = v
	}
	w := e.do(http.MethodPost, "/api/vehicles", payload)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	var body map[string]interface{}
	decode(e.t, w, &body)
	return body
}

// multipartUpload builds a documents upload request with the given
// filename->content pairs, in order.
func (e *testEnv) multipartUpload(vehicleID string, files [][2]string) *http.Request {
	e.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(e.t, mw.WriteField("vehicle_id", vehicleID))
	for _, f := range files {
		part, err := mw.CreateFormFile("documents", f[0])
		require.NoError(e.t, err)
		_, err = part.Write([]byte(f[1]))
		require.NoError(e.t, err)
	}
	require.NoError(e.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)
	return req
}
