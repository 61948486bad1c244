package auth

import "strings"

// specialChars is the accepted special character set for passwords.
const specialChars = "!@#$%^&*"

// PasswordRequirement is one independently checkable password rule.
type PasswordRequirement struct {
	Met  bool   `json:"met"`
	Text string `json:"text"`
}

// PasswordRequirements evaluates every password rule. The conjunction of all
// rules gates sign-up at the request edge; the session store itself does not
// re-check strength.
func PasswordRequirements(password string) []PasswordRequirement {
	return []PasswordRequirement{
		{Met: len(password) >= 8, Text: "At least 8 characters"},
		{Met: strings.ContainsFunc(password, isUpper), Text: "One uppercase letter"},
		{Met: strings.ContainsFunc(password, isLower), Text: "One lowercase letter"},
		{Met: strings.ContainsFunc(password, isDigit), Text: "One number"},
		{Met: strings.ContainsAny(password, specialChars), Text: "One special character (!@#$%^&*)"},
	}
}

// IsPasswordValid reports whether every requirement is met.
func IsPasswordValid(password string) bool {
	for _, req := range PasswordRequirements(password) {
		if !req.Met {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
