package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mogzealio/rest-api-v3-heroku/internal/db"
	"github.com/mogzealio/rest-api-v3-heroku/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

// newTestRouter builds a router backed by a fresh temp-file SQLite database
// with the schema migrated, mirroring the production wiring.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, conn, testJWTSecret)
	return r, conn
}

// doRequest performs a request against the router and returns the recorder.
// An empty token leaves the Authorization header unset.
func doRequest(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAndAuth creates a user and returns a valid bearer token for it.
func registerAndAuth(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	creds := `{"username":"` + username + `","password":"` + password + `"}`
	if w := doRequest(t, r, http.MethodPost, "/register", creds, ""); w.Code != http.StatusCreated {
		t.Fatalf("Register returned %d: %s", w.Code, w.Body.String())
	}
	w := doRequest(t, r, http.MethodPost, "/auth", creds, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Auth returned %d: %s", w.Code, w.Body.String())
	}
	token, ok := decodeBody(t, w)["access_token"].(string)
	if !ok || token == "" {
		t.Fatalf("Auth response missing access_token: %s", w.Body.String())
	}
	return token
}

// createStore creates a store through the API and returns its assigned ID.
func createStore(t *testing.T, r *gin.Engine, conn *gorm.DB, name string) uint {
	t.Helper()
	if w := doRequest(t, r, http.MethodPost, "/store/"+name, "", ""); w.Code != http.StatusCreated {
		t.Fatalf("Create store returned %d: %s", w.Code, w.Body.String())
	}
	store, err := domain.FindStoreByName(conn, name)
	if err != nil || store == nil {
		t.Fatalf("Created store %q not found: %v", name, err)
	}
	return store.ID
}
