// Package version provides version information for the application.
//
// Version and Revision can be set at link time with -ldflags "-X". When they
// are not set, they are read from the module build information embedded by
// the Go toolchain.
package version
