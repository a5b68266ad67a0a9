// Package cli contains the command line interface of apptemplate.
//
// # Usage
//
//	apptemplate [--demo] [--config=FILE] [--version] [-h|--help]
//
// Without flags the application logs that it started and finished. --demo
// runs the logging walkthrough from the demo package in between. --config
// reads logging settings from a YAML file; environment variables such as
// LOG_LEVEL and LOG_DIR still take precedence over it.
//
// # Version
//
// The version printed by --version can be set at build time:
//
//	go build -ldflags "-X github.com/philipp01105/apptemplate/cli.version=1.2.0" ./cmd/apptemplate
//
// Otherwise the module version recorded by the Go toolchain is used, which
// is "(devel)" for builds from a working tree.
package cli
