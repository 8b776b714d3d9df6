package auth

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// minCredentialLength applies to both operator roles' passwords.
const minCredentialLength = 12

// commonPasswords are rejected outright, exactly or as a prefix of a
// barely-padded variant.
var commonPasswords = []string{
	"admin", "password", "123456", "secret", "admin123", "password123",
	"123456789", "12345678", "qwerty", "abc123", "letmein", "welcome",
	"monkey", "1234567890", "password1", "admin1", "test", "test123",
	"default", "root",
}

var keyboardRows = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm", "qwerty", "asdfgh", "zxcvb",
}

// ValidateAdminCredentials checks ADMIN_USER / ADMIN_USER_PASSWORD at
// startup. A failure here must abort boot: running the dispatch API
// without a trustworthy operator credential is worse than not running.
// Error messages name the rule broken, never the password itself.
func ValidateAdminCredentials() error {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")

	if user == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER must not be empty")
	}
	if pass == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be empty")
	}
	if len(pass) < minCredentialLength {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must be at least %d characters (current length: %d)", minCredentialLength, len(pass))
	}
	if reason := passwordWeakness(pass); reason != "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD %s", reason)
	}
	return nil
}

// passwordWeakness returns a short reason when pass matches a known weak
// shape, or "" when it is acceptable.
func passwordWeakness(pass string) string {
	if isNumericRun(pass) {
		return "must not be a simple numeric pattern"
	}
	if matchesKeyboardRow(pass) {
		return "must not be a keyboard pattern"
	}
	lower := strings.ToLower(pass)
	for _, weak := range commonPasswords {
		if lower == weak {
			return "must not be a weak password"
		}
		// "admin1234567890" and friends: a weak base with little padding.
		if strings.HasPrefix(lower, weak) && len(pass) < minCredentialLength+5 {
			return "must not be based on common weak passwords"
		}
	}
	return ""
}

// isNumericRun reports repeated, ascending, or descending digit strings of
// credential length ("111111111111", "123456789012").
func isNumericRun(pass string) bool {
	if len(pass) < minCredentialLength {
		return false
	}

	repeated := true
	for i := 1; i < len(pass); i++ {
		if pass[i] != pass[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return true
	}

	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	ascending, descending := true, true
	for i := 1; i < len(pass); i++ {
		step := int(pass[i]) - int(pass[i-1])
		if step != 1 && step != -9 { // 9 wraps to 0
			ascending = false
		}
		if step != -1 && step != 9 { // 0 wraps to 9
			descending = false
		}
	}
	return ascending || descending
}

func matchesKeyboardRow(pass string) bool {
	lower := strings.ToLower(pass)
	for _, row := range keyboardRows {
		if strings.Contains(lower, row) || strings.Contains(lower, reversed(row)) {
			return true
		}
	}
	return false
}

func reversed(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ValidateViewerCredentials checks DEMO_USER / DEMO_USER_PASSWORD and
// degrades gracefully: a misconfigured viewer credential disables the
// viewer role (by unsetting the env vars the provider reads) but never
// stops startup. The dispatch API stays usable in admin-only mode.
func ValidateViewerCredentials(logger *slog.Logger) error {
	demoUser := os.Getenv("DEMO_USER")
	demoPass := os.Getenv("DEMO_USER_PASSWORD")

	if demoUser == "" {
		logger.Info("viewer role not configured - running in admin-only mode")
		return nil
	}
	if demoPass == "" {
		logger.Warn("DEMO_USER_PASSWORD is empty - disabling viewer role")
		disableViewer()
		return nil
	}
	if demoUser == os.Getenv("ADMIN_USER") {
		logger.Warn("DEMO_USER cannot be the same as ADMIN_USER - disabling viewer role")
		disableViewer()
		return nil
	}
	if len(demoPass) < minCredentialLength {
		logger.Warn("DEMO_USER_PASSWORD must be at least 12 characters - disabling viewer role")
		disableViewer()
		return nil
	}

	lower := strings.ToLower(demoPass)
	for _, weak := range commonPasswords {
		if lower == weak || strings.HasPrefix(lower, weak) {
			logger.Warn("DEMO_USER_PASSWORD is a weak password - disabling viewer role",
				"hint", "avoid common passwords")
			disableViewer()
			return nil
		}
	}

	logger.Info("viewer role configured successfully", "user", demoUser)
	return nil
}

func disableViewer() {
	_ = os.Unsetenv("DEMO_USER")
	_ = os.Unsetenv("DEMO_USER_PASSWORD")
}
