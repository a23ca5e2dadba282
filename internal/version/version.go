package version

// Version is overridden at build time with -ldflags "-X revcomp/internal/version.Version=...".
var Version = "0.1.0-dev"
