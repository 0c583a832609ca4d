// Package version reports the build version of the prism binary.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/prism/version.Version=1.2.0" ./cmd/prism
//
// Unset values fall back to the module build info.
package version
