package models

import "time"

// WebhookResponse is the body returned for every processed webhook.
// Callers must inspect TierActivated/Reason, not just the status code.
type WebhookResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	TierActivated *TierName `json:"tierActivated"`
	Benefits      string    `json:"benefits,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}

// LegacyGoldBenefits is the original Gold-only lookup shape, kept for the
// deployed front end.
type LegacyGoldBenefits struct {
	HasGoldBenefits bool       `json:"hasGoldBenefits"`
	Benefits        BenefitSet `json:"benefits,omitempty"`
	ClaimedAt       *time.Time `json:"claimedAt,omitempty"`
}

// ErrorResponse is a generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
