package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// mustSession is for routes behind RequireSession.
func mustSession(c *gin.Context) (*usecase.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Unauthorized", nil)
		return nil, false
	}
	return s, true
}
