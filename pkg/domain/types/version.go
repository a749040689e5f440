package types

// Version is the application version, overwritten at build time via
// -ldflags "-X github.com/olsync/olpull/pkg/domain/types.Version=...".
var Version = "dev"
