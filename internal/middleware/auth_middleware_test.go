package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "middleware-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
}

func tokenFor(t *testing.T, jwt *auth.JWTService, user *models.User) string {
	t.Helper()
	token, _, err := jwt.GenerateAccessToken(user)
	require.NoError(t, err)
	return token
}

// newAuthRouter mounts a handler echoing the caller identity behind mw
func newAuthRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		id, ok := appauth.FromContext(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "userId": id.UserID, "role": id.Role})
	})
	r.GET("/check", handlers...)
	return r
}

func doRequest(r http.Handler, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	jwt := newTestJWT()
	m := NewAuthMiddleware(jwt)
	r := newAuthRouter(m.JWTAuth())
	token := tokenFor(t, jwt, &models.User{ID: 5, Email: "e@test.com", Role: models.RoleEmployee})

	w := doRequest(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", "Bearer garbage") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) })
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":true,"userId":5,"role":"employee"}`, w.Body.String())

	w = doRequest(r, func(req *http.Request) { req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token}) })
	assert.Equal(t, http.StatusOK, w.Code, "session cookie is accepted")
}

func TestOptionalAuth(t *testing.T) {
	jwt := newTestJWT()
	m := NewAuthMiddleware(jwt)
	r := newAuthRouter(m.OptionalAuth())

	w := doRequest(r, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false,"userId":0,"role":""}`, w.Body.String())

	w = doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", "Bearer garbage") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := tokenFor(t, jwt, &models.User{ID: 1, Email: "s@test.com", Role: models.RoleSeeker})
	w = doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", token) })
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestPageGuard_RedirectsToLogin(t *testing.T) {
	jwt := newTestJWT()
	m := NewAuthMiddleware(jwt)
	r := newAuthRouter(m.PageGuard())

	w := doRequest(r, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, LoginPath, resp.Redirect)

	// Any role may open any page; role checks happen in the handler
	token := tokenFor(t, jwt, &models.User{ID: 1, Email: "s@test.com", Role: models.RoleSeeker})
	w = doRequest(r, func(req *http.Request) { req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token}) })
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired(t *testing.T) {
	jwt := newTestJWT()
	m := NewAuthMiddleware(jwt)
	r := newAuthRouter(m.JWTAuth(), m.RoleRequired(models.RoleAdmin))

	seeker := tokenFor(t, jwt, &models.User{ID: 1, Email: "s@test.com", Role: models.RoleSeeker})
	w := doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+seeker) })
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := tokenFor(t, jwt, &models.User{ID: 3, Email: "a@test.com", Role: models.RoleAdmin})
	w = doRequest(r, func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+admin) })
	assert.Equal(t, http.StatusOK, w.Code)

	bare := newAuthRouter(m.RoleRequired(models.RoleAdmin))
	w = doRequest(bare, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newAuthRouter(RequestID())

	w := doRequest(r, nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	incoming := "3f1c2d9e-8a7b-4c6d-9e0f-1a2b3c4d5e6f"
	w = doRequest(r, func(req *http.Request) { req.Header.Set(RequestIDHeader, incoming) })
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = doRequest(r, func(req *http.Request) { req.Header.Set(RequestIDHeader, "not-a-uuid") })
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}
