package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classify every failure the pull pipeline can surface. Callers
// check them with goerr.HasTag instead of matching message strings, so the
// CLI can tell "cookie rejected" from "project missing" from "host
// unreachable" and report the right corrective action.
var (
	// ErrTagConfig marks a missing or malformed input, detected before any
	// network activity
	ErrTagConfig = goerr.NewTag("config")

	// ErrTagAuth marks a rejected session cookie (401/403, or a success
	// response carrying a login page instead of a zip)
	ErrTagAuth = goerr.NewTag("auth")

	// ErrTagNotFound marks a project that does not exist on the platform
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagNetwork marks a transport-level fault: DNS, TLS, connection or
	// timeout
	ErrTagNetwork = goerr.NewTag("network")

	// ErrTagUnexpectedStatus marks any other non-success HTTP status
	ErrTagUnexpectedStatus = goerr.NewTag("unexpected_status")

	// ErrTagCorruptArchive marks a payload that is not a well-formed zip
	ErrTagCorruptArchive = goerr.NewTag("corrupt_archive")

	// ErrTagUnsafeEntry marks an archive entry that would escape the output
	// directory
	ErrTagUnsafeEntry = goerr.NewTag("unsafe_entry")

	// ErrTagUnwritable marks an output directory that cannot be created or
	// written
	ErrTagUnwritable = goerr.NewTag("unwritable")
)
