package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/claimsdesk/backend/internal/application/dashboard"
)

// LedgerHandler exposes ledger service diagnostics
type LedgerHandler struct {
	BaseHandler
	service *dashboard.Service
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service *dashboard.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// Health godoc
// @Summary      Ledger service health
// @Tags         ledger
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Router       /ledger/health [get]
func (h *LedgerHandler) Health(c *gin.Context) {
	info, err := h.service.LedgerHealth(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ledger/health", h.Health)
}
