package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"bistro-boss-api/auth"
	"bistro-boss-api/config"
	"bistro-boss-api/gateway"
	"bistro-boss-api/handlers"
	"bistro-boss-api/models"
	"bistro-boss-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeGateway records the last intent request instead of calling out.
type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	return &gateway.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

// setupServer builds the full router against a throwaway sqlite database.
func setupServer(t *testing.T) (*gin.Engine, *handlers.Handler, *fakeGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	gw := &fakeGateway{}
	h := handlers.New(db, tokens, gw, nil)

	r := gin.New()
	routes.SetupRoutes(r, h)
	return r, h, gw
}

func issueToken(t *testing.T, h *handlers.Handler, email string) string {
	t.Helper()
	token, err := h.Tokens.Issue(email)
	require.NoError(t, err)
	return token
}

func seedAdmin(t *testing.T, h *handlers.Handler, email string) {
	t.Helper()
	require.NoError(t, h.DB.Create(&models.User{Email: email, Role: models.RoleAdmin}).Error)
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
