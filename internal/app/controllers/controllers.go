// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// caller returns the authenticated identity, or nil for anonymous requests
func caller(ctx *gin.Context) *appauth.Identity {
	id, ok := appauth.FromContext(ctx)
	if !ok {
		return nil
	}
	return &id
}
