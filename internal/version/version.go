package version

// Version is the application version, overridable at build time with
// -ldflags "-X talkcoach/internal/version.Version=...".
var Version = "0.3.0"
