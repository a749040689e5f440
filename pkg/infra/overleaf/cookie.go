package overleaf

import (
	"net/url"
	"strings"
)

// cookieName is the session cookie Overleaf issues on login.
const cookieName = "overleaf.sid"

// NormalizeCookie canonicalizes a session credential into the exact
// "overleaf.sid=<value>" header value the platform expects. It accepts the
// bare cookie value, a percent-encoded value (as copied from browser dev
// tools), or a full name=value pair, and applies at most one decode pass so
// an already-decoded value is never decoded twice.
func NormalizeCookie(raw string) string {
	value := strings.TrimSpace(raw)
	if len(value) > len(cookieName) && strings.EqualFold(value[:len(cookieName)+1], cookieName+"=") {
		value = value[len(cookieName)+1:]
	}

	if strings.Contains(value, "%") {
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
	}

	return cookieName + "=" + value
}
