package version

// AppVersion is overridden at build time via -ldflags "-X huelog/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
