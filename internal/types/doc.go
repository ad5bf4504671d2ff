// Package types defines the service, tool and result descriptors shared by
// providers, the registry and the CLI.
package types
