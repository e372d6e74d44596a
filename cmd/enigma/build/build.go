package build

// Set at link time with -ldflags "-X github.com/sergeii/enigma/cmd/enigma/build.Version=..."
var (
	Version = "development" // nolint: gochecknoglobals
	Commit  = "unknown"     // nolint: gochecknoglobals
	Time    = "unknown"     // nolint: gochecknoglobals
)
