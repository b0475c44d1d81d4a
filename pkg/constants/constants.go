package constants

// Version is the stemforge version, set at build time via ldflags
var Version = "dev"

// CommitSHA is the git commit the binary was built from, set at build time via ldflags
var CommitSHA = "unknown"
