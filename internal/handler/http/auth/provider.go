package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	authservice "notify-hub/internal/service/auth"
)

// BasicAuthProvider authenticates the two operator roles against
// environment-configured credentials: ADMIN_USER and, when enabled by the
// startup validator, the read-only DEMO_USER.
type BasicAuthProvider struct {
	minPasswordLength int
	weakPasswords     []string
}

func NewBasicAuthProvider(minPasswordLength int, weakPasswords []string) *BasicAuthProvider {
	return &BasicAuthProvider{
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials accepts either operator role. All comparisons are
// constant-time so response timing does not reveal which field mismatched
// or which role was attempted.
func (p *BasicAuthProvider) ValidateCredentials(ctx context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}
	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}
	for _, weak := range p.weakPasswords {
		if creds.Password == weak || strings.HasPrefix(creds.Password, weak) {
			return fmt.Errorf("weak password detected")
		}
	}

	adminMatch := constantTimeMatch(creds, os.Getenv("ADMIN_USER"), os.Getenv("ADMIN_USER_PASSWORD"))

	// DEMO_USER unset means the viewer role is disabled, not open.
	demoUser := os.Getenv("DEMO_USER")
	demoMatch := demoUser != "" && constantTimeMatch(creds, demoUser, os.Getenv("DEMO_USER_PASSWORD"))

	if !adminMatch && !demoMatch {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

func constantTimeMatch(creds authservice.Credentials, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(pass)) == 1
	return userOK && passOK
}

// GetRequirements exposes the password policy for login validation.
func (p *BasicAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

func (p *BasicAuthProvider) Name() string {
	return "basic"
}

// IdentifyUser maps a login name onto its role: ADMIN_USER gets admin,
// a configured DEMO_USER gets the read-only viewer role.
func (p *BasicAuthProvider) IdentifyUser(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}

	if subtle.ConstantTimeCompare([]byte(email), []byte(os.Getenv("ADMIN_USER"))) == 1 {
		return RoleAdmin, nil
	}
	demoUser := os.Getenv("DEMO_USER")
	if demoUser != "" && subtle.ConstantTimeCompare([]byte(email), []byte(demoUser)) == 1 {
		return RoleViewer, nil
	}
	return "", fmt.Errorf("user not found")
}
