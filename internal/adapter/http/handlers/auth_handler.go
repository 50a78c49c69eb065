package handlers

import (
	"net/http"
	"strings"

	request "cablequote/internal/adapter/http/dto/request"
	response "cablequote/internal/adapter/http/dto/response"
	"cablequote/internal/usecase"
	logx "cablequote/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges email/password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		logx.Warn().Str("email", strings.ToLower(strings.TrimSpace(payload.Email))).Msg("[auth][handler] login rejected")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s, true))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), s.Token); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the role and capabilities of the calling session.
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s, false))
}
