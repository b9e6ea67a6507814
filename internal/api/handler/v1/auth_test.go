package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/config"
	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/service"
)

type fakeAuthService struct {
	users []domain.User
}

func (s *fakeAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, service.ErrEmailInconnu
}

func (s *fakeAuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}

	return domain.User{}, service.ErrUserNotFound
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	svc := &fakeAuthService{users: []domain.User{
		{ID: "user-1", Email: "sophie.martin@eduka.fr", Role: domain.RoleFormateur},
	}}
	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-signing-key"}, svc)
	authenticator := middleware.NewAuthenticator("test-signing-key")

	router := gin.New()
	router.POST("/api/v1/auth/login", handler.HandleLogin)
	router.GET("/api/v1/auth/me", authenticator.VerifyJWT(), handler.HandleGetCurrentUser)

	return router
}

func TestHandleLogin(t *testing.T) {
	router := newAuthRouter(t)

	recorder := httptest.NewRecorder()
	body := `{"email":"sophie.martin@eduka.fr","password":"nimporte"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestHandleLogin_EmailInconnu(t *testing.T) {
	router := newAuthRouter(t)

	recorder := httptest.NewRecorder()
	body := `{"email":"inconnu@eduka.fr","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandleLogin_EmailInvalide(t *testing.T) {
	router := newAuthRouter(t)

	recorder := httptest.NewRecorder()
	body := `{"email":"pas-un-email","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleGetCurrentUser(t *testing.T) {
	router := newAuthRouter(t)

	// Login first to obtain a token bound to this user agent.
	recorder := httptest.NewRecorder()
	body := `{"email":"sophie.martin@eduka.fr","password":"x"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	loginReq.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(recorder, loginReq)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	recorder = httptest.NewRecorder()
	meReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+resp.Token)
	meReq.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(recorder, meReq)

	require.Equal(t, http.StatusOK, recorder.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "sophie.martin@eduka.fr", user.Email)
}

func TestHandleGetCurrentUser_SansToken(t *testing.T) {
	router := newAuthRouter(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
