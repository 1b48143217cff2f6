package config

// Set at build time via -ldflags "-X github.com/bibliothecadao/desiege-cli/internal/config.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
