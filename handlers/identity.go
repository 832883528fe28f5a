package handlers

import (
	"errors"
	"net/http"

	"freshfold/services/identity"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityHandler exposes sign-in endpoints for returning customers.
type IdentityHandler struct {
	svc    identity.IdentityService
	logger *zap.Logger
}

func NewIdentityHandler(svc identity.IdentityService, logger *zap.Logger) *IdentityHandler {
	return &IdentityHandler{svc: svc, logger: logger}
}

// Authenticate performs a password sign-in. Identities provisioned during
// checkout carry a random password, so this succeeds only for accounts whose
// password was set elsewhere; everyone else uses the magic link.
func (h *IdentityHandler) Authenticate(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RequestMagicLink emails a single-use sign-in link.
func (h *IdentityHandler) RequestMagicLink(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.svc.RequestMagicLink(c.Request.Context(), input.Email); err != nil {
		h.respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// VerifyMagicLink exchanges a magic-link token for an auth token.
func (h *IdentityHandler) VerifyMagicLink(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.svc.VerifyMagicLink(c.Request.Context(), input.Email, input.Token)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *IdentityHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrIdentityNotFound):
		utils.JSONError(c, http.StatusNotFound, "no account found for this email", "")
	case errors.Is(err, identity.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
	default:
		h.logger.Error("identity operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "sign-in failed, please try again", "")
	}
}
