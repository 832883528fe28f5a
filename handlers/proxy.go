package handlers

import (
	"encoding/json"
	"net/http"

	"freshfold/config"
	"freshfold/services/saas"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProxyHandler forwards browser requests to the laundry platform with the
// secret bearer token injected server-side.
type ProxyHandler struct {
	client saas.Client
	tokens saas.TokenSource
	logger *zap.Logger
}

func NewProxyHandler(client saas.Client, tokens saas.TokenSource, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{client: client, tokens: tokens, logger: logger}
}

var allowedProxyMethods = map[string]bool{
	http.MethodGet:  true,
	http.MethodPost: true,
	http.MethodPut:  true,
}

// Forward relays {path, method, body} to the platform.
func (h *ProxyHandler) Forward(c *gin.Context) {
	var input struct {
		Path   string          `json:"path"`
		Method string          `json:"method"`
		Body   json.RawMessage `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Path == "" || !allowedProxyMethods[input.Method] {
		utils.JSONError(c, http.StatusBadRequest, "invalid proxy request", "path and a supported method are required")
		return
	}

	status, body, err := h.client.Forward(c.Request.Context(), input.Method, input.Path, input.Body)
	if err != nil {
		h.logger.Error("proxy forward failed", zap.String("path", input.Path), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "upstream request failed", "")
		return
	}
	c.Data(status, "application/json", body)
}

// GetAPIKey returns the raw platform key. Legacy client path; disabled unless
// EXPOSE_RAW_API_KEY is set.
func (h *ProxyHandler) GetAPIKey(c *gin.Context) {
	if !config.AppConfig.ExposeRawAPIKey {
		utils.JSONError(c, http.StatusForbidden, "endpoint disabled", "")
		return
	}

	key, err := h.tokens.Token(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "key unavailable", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key})
}
