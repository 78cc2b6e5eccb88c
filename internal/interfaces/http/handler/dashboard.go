package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/claimsdesk/backend/internal/application/dashboard"
)

// DashboardHandler serves the console's initial ledger snapshot
type DashboardHandler struct {
	BaseHandler
	service *dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// DashboardResponse is the console bootstrap payload
type DashboardResponse struct {
	LedgerReady    bool    `json:"ledger_ready"`
	LedgerAddress  string  `json:"ledger_address,omitempty"`
	InsurerBalance float64 `json:"insurer_balance"`
	InsurerAddress string  `json:"insurer_address,omitempty"`
	ClientBalance  float64 `json:"client_balance"`
	ClientAddress  string  `json:"client_address,omitempty"`
}

// Get godoc
// @Summary      Console bootstrap data
// @Description  Establishes the ledger session and returns both party balances.
// @Description  Partial upstream failures leave the affected fields zeroed.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	result := h.service.Bootstrap(c.Request.Context())
	h.Success(c, DashboardResponse{
		LedgerReady:    result.LedgerReady,
		LedgerAddress:  result.LedgerAddress,
		InsurerBalance: result.InsurerBalance,
		InsurerAddress: result.InsurerAddress,
		ClientBalance:  result.ClientBalance,
		ClientAddress:  result.ClientAddress,
	})
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}
