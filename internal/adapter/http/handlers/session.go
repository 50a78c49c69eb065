package handlers

import (
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func currentSession(c *gin.Context) (entities.Session, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return entities.Session{}, false
	}
	return s, true
}
