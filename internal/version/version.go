package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/xrelkd/axdot/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/xrelkd/axdot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/xrelkd/axdot/internal/version.Date={{.Date}}
)
