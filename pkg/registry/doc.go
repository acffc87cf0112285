// Package registry provides a generic, thread-safe registry keyed by name.
// The provider tables register themselves into one from init() functions.
package registry
