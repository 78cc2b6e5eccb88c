package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/claimsdesk/backend/internal/application/dashboard"
	"github.com/claimsdesk/backend/internal/domain/claims"
)

// ClaimsHandler exposes the claims list and the manual accept/decline actions
type ClaimsHandler struct {
	BaseHandler
	service *dashboard.Service
}

// NewClaimsHandler creates a new ClaimsHandler
func NewClaimsHandler(service *dashboard.Service) *ClaimsHandler {
	return &ClaimsHandler{service: service}
}

// ClaimView decorates a claim with the derived review fields the console needs
type ClaimView struct {
	claims.Claim
	Actionable  bool   `json:"actionable"`
	PayoutDrops string `json:"payoutDrops"`
}

func newClaimView(c claims.Claim) ClaimView {
	view := ClaimView{
		Claim:      c,
		Actionable: c.Actionable(),
	}
	if drops, err := c.PayoutDrops(); err == nil {
		view.PayoutDrops = drops.String()
	}
	return view
}

// ClaimListResponse is the claims list payload
type ClaimListResponse struct {
	Items      []ClaimView `json:"items"`
	NextCursor *string     `json:"nextCursor"`
}

// List godoc
// @Summary      List claims
// @Description  Returns the upstream claims list with review flags attached
// @Tags         claims
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Router       /claims [get]
func (h *ClaimsHandler) List(c *gin.Context) {
	list, err := h.service.FetchClaims(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	views := make([]ClaimView, 0, len(list.Items))
	for _, item := range list.Items {
		views = append(views, newClaimView(item))
	}

	h.Success(c, ClaimListResponse{Items: views, NextCursor: list.NextCursor})
}

// Get godoc
// @Summary      Get a claim
// @Tags         claims
// @Produce      json
// @Param        id path string true "Claim ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /claims/{id} [get]
func (h *ClaimsHandler) Get(c *gin.Context) {
	claim, err := h.service.GetClaim(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newClaimView(*claim))
}

// AcceptResponse reports the escrow finish outcome for an accepted claim
type AcceptResponse struct {
	ClaimID  string `json:"claim_id"`
	EscrowID string `json:"escrow_id"`
	Finished bool   `json:"finished"`
	TxHash   string `json:"tx_hash,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Accept godoc
// @Summary      Accept a claim
// @Description  Finalizes the escrow bound to the claim, releasing the payout
// @Tags         claims
// @Produce      json
// @Param        id path string true "Claim ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Router       /claims/{id}/accept [post]
func (h *ClaimsHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	result, err := h.service.Accept(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, AcceptResponse{
		ClaimID:  id,
		EscrowID: result.EscrowID,
		Finished: result.Finished,
		TxHash:   result.TxHash,
		Message:  result.Message,
	})
}

// DeclineResponse reports the escrow cancel outcome for a declined claim
type DeclineResponse struct {
	ClaimID  string `json:"claim_id"`
	EscrowID string `json:"escrow_id"`
	Canceled bool   `json:"canceled"`
	TxHash   string `json:"tx_hash,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Decline godoc
// @Summary      Decline a claim
// @Description  Cancels the escrow bound to the claim. A ledger-side cancel
// @Description  failure is reported in the payload, not as an HTTP error.
// @Tags         claims
// @Produce      json
// @Param        id path string true "Claim ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /claims/{id}/decline [post]
func (h *ClaimsHandler) Decline(c *gin.Context) {
	id := c.Param("id")
	result, err := h.service.Decline(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DeclineResponse{
		ClaimID:  id,
		EscrowID: result.EscrowID,
		Canceled: result.Canceled,
		TxHash:   result.TxHash,
		Message:  result.Message,
	})
}

// RegisterRoutes registers claim routes
func (h *ClaimsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/claims", h.List)
	rg.GET("/claims/:id", h.Get)
	rg.POST("/claims/:id/accept", h.Accept)
	rg.POST("/claims/:id/decline", h.Decline)
}
