package model

// PullRequest identifies one project pull: which project and where to place it
type PullRequest struct {
	ProjectID string // Opaque project identifier, used as a URL path segment
	OutputDir string // Directory the archive is extracted into
}

// PullResult reports what a completed pull wrote to disk
type PullResult struct {
	OutputDir string // Directory the project was extracted into
	FileCount int    // Number of files written
	Size      int64  // Total uncompressed size in bytes
}
