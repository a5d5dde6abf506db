// Package ports defines the interfaces between architectural layers.
// Content ports are implemented by storage adapters (local YAML stores or
// the remote content client) and consumed by the application layer.
package ports
