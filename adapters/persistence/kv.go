package persistence

import "context"

// Logical storage keys. Each holds one JSON document and is written as a
// whole; there is no cross-key atomicity.
const (
	KeyVersions       = "cv_versions"
	KeyCurrentVersion = "current_version_id"
	KeySections       = "sections_config"
	KeyTheme          = "current_theme"
)

// KVStore is the durable key-value medium behind every aggregate.
// Get returns (nil, nil) for an absent key. Implementations never panic
// across this boundary; every failure comes back as an error value.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
