package models

// ClaimMetadata carries contact info nested inside some claim payloads.
type ClaimMetadata struct {
	Email   string      `json:"email,omitempty"`
	Discord DiscordInfo `json:"discord,omitempty"`
}

// ClaimWebhook is the BitBadges claim notification payload. Field names
// (including the underscore-prefixed ones) follow the upstream wire format.
type ClaimWebhook struct {
	PluginSecret     string         `json:"pluginSecret,omitempty"`
	ClaimID          string         `json:"claimId,omitempty"`
	ClaimAttemptID   string         `json:"claimAttemptId,omitempty"`
	EthAddress       string         `json:"ethAddress,omitempty"`
	BitBadgesAddress string         `json:"bitbadgesAddress,omitempty"`
	Email            string         `json:"email,omitempty"`
	Discord          DiscordInfo    `json:"discord,omitempty"`
	AttemptStatus    string         `json:"_attemptStatus,omitempty"`
	IsSimulation     bool           `json:"_isSimulation,omitempty"`
	BadgeID          string         `json:"badgeId,omitempty"`
	CollectionID     string         `json:"collectionId,omitempty"`
	Metadata         *ClaimMetadata `json:"metadata,omitempty"`
}

// ContactEmail returns the email from the nested metadata when present,
// falling back to the top-level field.
func (p *ClaimWebhook) ContactEmail() string {
	if p.Metadata != nil && p.Metadata.Email != "" {
		return p.Metadata.Email
	}
	return p.Email
}

// ContactDiscord returns the Discord identity from the nested metadata when
// present, falling back to the top-level field.
func (p *ClaimWebhook) ContactDiscord() DiscordInfo {
	if p.Metadata != nil && p.Metadata.Discord.Username != "" {
		return p.Metadata.Discord
	}
	return p.Discord
}

// Successful reports whether the claim actually went through. Simulated and
// failed attempts are normal traffic that must not activate benefits.
func (p *ClaimWebhook) Successful() bool {
	return p.AttemptStatus == "success" && !p.IsSimulation
}

// ActivationOutcome describes what a webhook ingest did.
type ActivationOutcome struct {
	TierActivated *TierName `json:"tierActivated"`
	Reason        string    `json:"reason,omitempty"`
}

// Skip reasons reported when a webhook is processed without activation.
const (
	ReasonSimulation     = "simulation"
	ReasonNotSuccessful  = "not successful claim"
	ReasonMissingAddress = "missing address"
)
