package overleaf

import "strings"

// NormalizeBaseURL canonicalizes a host string into "https://<host>" with no
// trailing slash. A scheme supplied by the caller is stripped first; the
// platform is only addressed over TLS.
func NormalizeBaseURL(host string) string {
	h := strings.TrimSpace(host)
	h = strings.TrimPrefix(h, "https://")
	h = strings.TrimPrefix(h, "http://")
	h = strings.TrimRight(h, "/")
	return "https://" + h
}

// downloadURL composes the project's zip-export endpoint. The path template
// is fixed by the platform; the identifier is inserted as an opaque segment.
func downloadURL(base, projectID string) string {
	return base + "/project/" + projectID + "/download/zip"
}

// projectURL composes the project page endpoint, used for CSRF token discovery.
func projectURL(base, projectID string) string {
	return base + "/project/" + projectID
}
