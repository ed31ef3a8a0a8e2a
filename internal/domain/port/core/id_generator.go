package core

// IDGenerator produces unique identifiers for users, requests and
// ledger entries. Request lookups are by these IDs, never by
// (owner, timestamp) pairs.
type IDGenerator interface {
	NewID() string
}
