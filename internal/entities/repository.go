// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// RepoKey identifies a repository on the remote platform.
// Owner and Name are case-sensitive.
type RepoKey struct {
	Owner string
	Name  string
}

// String returns the canonical "owner/name" cache key.
func (k RepoKey) String() string {
	return fmt.Sprintf("%s/%s", k.Owner, k.Name)
}

// CacheEntry is one cached environment list for a repository.
// Entries are immutable once stored; a refresh replaces the whole
// entry, it is never mutated in place.
type CacheEntry struct {
	Data      []EnvironmentSnapshot `json:"data"`
	FetchedAt time.Time             `json:"fetched_at"`
}
