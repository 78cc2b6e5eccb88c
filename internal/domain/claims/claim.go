package claims

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus represents the progress of a filed claim
type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "SUBMITTED"
	ClaimStatusApproved  ClaimStatus = "APPROVED"
	ClaimStatusRejected  ClaimStatus = "REJECTED"
	ClaimStatusPaid      ClaimStatus = "PAID"
	ClaimStatusManual    ClaimStatus = "MANUAL"
)

// IsValid checks whether the status is one of the known values
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusApproved, ClaimStatusRejected,
		ClaimStatusPaid, ClaimStatusManual:
		return true
	}
	return false
}

// AIDecision is the advisory classification attached to a claim by the
// upstream adjudication pipeline. It is not authoritative.
type AIDecision string

const (
	AIDecisionAccepted AIDecision = "Accepted"
	AIDecisionDeclined AIDecision = "Declined"
	AIDecisionEscalate AIDecision = "Escalate to human"
	AIDecisionUnknown  AIDecision = "Unknown"
)

// IsValid checks whether the decision is one of the known values
func (d AIDecision) IsValid() bool {
	switch d {
	case AIDecisionAccepted, AIDecisionDeclined, AIDecisionEscalate, AIDecisionUnknown:
		return true
	}
	return false
}

// Claim represents one filed insurance claim as served by the claims API.
// The product* fields are a snapshot captured when the claim was created;
// they are never refreshed from the live product record.
type Claim struct {
	ID             string      `json:"id"`
	PolicyID       string      `json:"policyId"`
	Status         ClaimStatus `json:"status"`
	PolicyEscrowID string      `json:"policyEscrowId"`

	IncidentDate time.Time `json:"incidentDate"`
	Details      string    `json:"details"`
	EvidenceURL  string    `json:"evidenceUrl"`

	AIDecision *AIDecision     `json:"aiDecision,omitempty"`
	AIRaw      json.RawMessage `json:"aiRaw,omitempty"`

	PayoutAt     *time.Time      `json:"payoutAt,omitempty"`
	PayoutTxHash *string         `json:"payoutTxHash,omitempty"`
	PayoutMeta   json.RawMessage `json:"payoutMeta,omitempty"`

	// Serialized as a string upstream to avoid precision loss.
	PayoutDropsSnapshot string `json:"payoutDropsSnapshot"`

	ProductID               string `json:"productId"`
	ProductName             string `json:"productName"`
	ProductCategory         string `json:"productCategory"`
	ProductPremiumDrops     string `json:"productPremiumDrops"`
	ProductPayoutDrops      string `json:"productPayoutDrops"`
	ProductShortDescription string `json:"productShortDescription"`
	ProductCoverageSummary  string `json:"productCoverageSummary"`
	ProductDescriptionMd    string `json:"productDescriptionMd"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PayoutDrops parses the payout snapshot into an exact decimal amount
func (c *Claim) PayoutDrops() (decimal.Decimal, error) {
	return decimal.NewFromString(c.PayoutDropsSnapshot)
}

// Actionable reports whether manual operator action (accept/decline)
// should be offered for this claim. Paid claims are settled and never
// actionable; claims the upstream adjudicator already accepted are
// informational only and settle through a separate channel.
func (c *Claim) Actionable() bool {
	if c.Status == ClaimStatusPaid {
		return false
	}
	if c.AIDecision == nil {
		return false
	}
	switch *c.AIDecision {
	case AIDecisionDeclined, AIDecisionUnknown, AIDecisionEscalate:
		return true
	}
	return false
}

// ClaimList is the claims API list payload. NextCursor is a forward
// pagination cursor; the upstream route currently always returns null.
type ClaimList struct {
	Items      []Claim `json:"items"`
	NextCursor *string `json:"nextCursor"`
}
