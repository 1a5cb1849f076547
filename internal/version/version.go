// internal/version/version.go
package version

// Version is overridden at link time:
//
//	go build -ldflags "-X tengebench/internal/version.Version=v1.2.3" ./cmd/benchctl
var Version = "dev"
