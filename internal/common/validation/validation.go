package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MaxEmailLength         = 254
	MaxDiscordHandleLength = 37
)

// Ethereum address: 0x followed by 40 hex characters.
var ethAddressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Simple sanity check, not an RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateAddress checks that an address looks like an Ethereum address.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !ethAddressRegex.MatchString(strings.TrimSpace(address)) {
		return fmt.Errorf("address must be a 0x-prefixed 40-character hex string")
	}

	return nil
}

// ValidateEmail checks that an email address is plausible.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	email = strings.TrimSpace(email)
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidateDiscordHandle checks a Discord username.
func ValidateDiscordHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("discord handle cannot be empty")
	}

	handle = strings.TrimSpace(handle)
	if len(handle) > MaxDiscordHandleLength {
		return fmt.Errorf("discord handle cannot exceed %d characters", MaxDiscordHandleLength)
	}

	return nil
}
