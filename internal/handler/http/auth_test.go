package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/jwt"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/oauth"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql/postgresql_test"
	authService "github.com/timeflow-hq/timeflow-backend-go/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

var testHandlerSetup *postgresql_test.TestDatabaseSetup

func handlerTestInit(t *testing.T, ctx context.Context) {
	if testHandlerSetup == nil {
		var err error
		testHandlerSetup, err = postgresql_test.NewTestDatabase()
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	require.NoError(t, testHandlerSetup.TruncateAllTables(ctx))
}

func createHandlerTestUser(t *testing.T, ctx context.Context, username, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	var userID string
	err = testHandlerSetup.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (id, username, full_name, email, role, password_hash)
		VALUES (gen_random_uuid(), $1, 'Test User', $2, 'employee', $3)
		RETURNING id
	`, username, username+"@example.com", string(hash)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newAuthTestHandler() AuthHandler {
	db := testHandlerSetup.DB
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	googleService := oauth.NewGoogleService("", "", "", nil)
	svc := authService.NewAuthService(db, postgresql.NewUserRepository(db), jwtService, postgresql.NewJWTRepository(db), googleService)
	return NewAuthHandler(jwtService, svc)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t, ctx)

	username := fmt.Sprintf("login-%d", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, username, "password123")
	handler := newAuthTestHandler()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)

	// Refresh token also lands in a cookie.
	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "refresh_token" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAuthHandler_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t, ctx)

	username := fmt.Sprintf("badpass-%d", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, username, "password123")
	handler := newAuthTestHandler()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshToken_Flow(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t, ctx)

	username := fmt.Sprintf("refresh-%d", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, username, "password123")
	handler := newAuthTestHandler()

	// Login first to obtain a refresh token.
	body, _ := json.Marshal(map[string]string{"username": username, "password": "password123"})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, loginReq)
	require.Equal(t, http.StatusCreated, loginRec.Code)

	var loginResp struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &loginResp))

	refreshBody, _ := json.Marshal(map[string]string{"refresh_token": loginResp.Data.RefreshToken})
	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(refreshBody))
	refreshRec := httptest.NewRecorder()
	handler.RefreshToken(refreshRec, refreshReq)

	assert.Equal(t, http.StatusOK, refreshRec.Code)

	var refreshResp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(refreshRec.Body.Bytes(), &refreshResp))
	assert.NotEmpty(t, refreshResp.Data.AccessToken)

	// After logout the same refresh token stops working.
	logoutBody, _ := json.Marshal(map[string]string{"refresh_token": loginResp.Data.RefreshToken})
	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", bytes.NewReader(logoutBody))
	logoutRec := httptest.NewRecorder()
	handler.Logout(logoutRec, logoutReq)
	require.Equal(t, http.StatusOK, logoutRec.Code)

	retryBody, _ := json.Marshal(map[string]string{"refresh_token": loginResp.Data.RefreshToken})
	retryReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(retryBody))
	retryRec := httptest.NewRecorder()
	handler.RefreshToken(retryRec, retryReq)
	assert.Equal(t, http.StatusUnauthorized, retryRec.Code)
}

func TestAuthHandler_RefreshToken_Missing(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t, ctx)

	handler := newAuthTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
