package interfaces

import "context"

// OverleafClient defines operations for interacting with the Overleaf platform
type OverleafClient interface {
	// DownloadZip downloads the zip export of a project and returns its raw bytes
	DownloadZip(ctx context.Context, projectID string) ([]byte, error)
}
