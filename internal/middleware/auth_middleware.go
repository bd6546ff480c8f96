package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/auth"
)

// SessionCookie is the cookie consulted when no Authorization header is sent
const SessionCookie = "session_token"

// LoginPath is where unauthenticated page requests are sent
const LoginPath = "/login"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// tokenFromRequest looks for a token in the Authorization header, then the
// authorization/token query parameters (Swagger UI), then the session cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		for _, key := range []string{"authorization", "Authorization", "token"} {
			if v := c.Query(key); v != "" {
				authHeader = v
				break
			}
		}
	}
	if authHeader == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			authHeader = cookie
		}
	}

	// Some clients wrap the value in quotes
	authHeader = strings.Trim(authHeader, "\"'")
	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return ""
	}
	return token
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) (*appauth.Identity, *dto.ErrorDetail) {
	claims, err := m.jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed").WithDetails("Invalid token")
		if errors.Is(err, auth.ErrExpiredToken) {
			detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed").WithDetails("Token has expired")
		}
		return nil, detail
	}

	id := appauth.Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
	appauth.SetIdentity(c, id)
	return &id, nil
}

// JWTAuth rejects requests without a valid token
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		if _, detail := m.authenticate(c, token); detail != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a token is present. Requests
// without a token pass through anonymously; an invalid token is rejected.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		if _, detail := m.authenticate(c, token); detail != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}

// PageGuard gates dashboard routes on the presence of a valid session. It does
// not check that the role matches the page.
func (m *AuthMiddleware) PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)

		var detail *dto.ErrorDetail
		if token == "" {
			detail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		} else {
			_, detail = m.authenticate(c, token)
		}

		if detail != nil {
			resp := dto.NewErrorResponse(detail)
			resp.Redirect = LoginPath
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}

		c.Next()
	}
}

// RoleRequired rejects authenticated callers whose role is not in roles.
// It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := appauth.FromContext(c)
		if !ok {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		if !id.HasRole(roles...) {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}
