package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"hr-admin/internal/middleware"
	"hr-admin/internal/model"
	"hr-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Candidate{},
		&model.Leave{},
		&model.Attendance{},
	))

	tokens := service.NewTokenService("test-secret")
	return NewRouter(db, tokens), db, tokens
}

type reqOpts struct {
	token string
	body  any
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, opts reqOpts) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if opts.body != nil {
		data, err := json.Marshal(opts.body)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if opts.token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: opts.token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func userToken(t *testing.T, tokens *service.TokenService) string {
	t.Helper()
	raw, err := tokens.Issue(2, false)
	require.NoError(t, err)
	return raw
}

func adminToken(t *testing.T, tokens *service.TokenService) string {
	t.Helper()
	raw, err := tokens.Issue(1, true)
	require.NoError(t, err)
	return raw
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func seedEmployee(t *testing.T, db *gorm.DB, name, email string) *model.Employee {
	t.Helper()
	e := model.Employee{
		Profile:    "https://img.example.com/p.png",
		Name:       name,
		Email:      email,
		Phone:      "555-0100",
		Position:   "Engineer",
		Department: "R&D",
	}
	require.NoError(t, db.Create(&e).Error)
	return &e
}
