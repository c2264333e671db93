package github

import "strings"

// Markers the platform embeds in free-text error messages when the
// structured protocol is administratively disabled for a repository.
// Kept in one place so the heuristic can be replaced by structured
// error-code classification if the platform ever exposes one.
var policyBlockMarkers = []string{
	"saml",
	"sso",
	"single sign-on",
	"organization",
}

// IsPolicyBlock reports whether an error message indicates the
// structured protocol was refused for organization access policy
// reasons rather than a transient failure.
func IsPolicyBlock(message string) bool {
	msg := strings.ToLower(message)
	for _, marker := range policyBlockMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
