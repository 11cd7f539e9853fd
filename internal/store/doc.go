// Package store persists connection profiles and serves them from an
// in-memory cache.
//
// Architecture:
//
//	┌────────────────────────┐
//	│        Manager         │  verified profiles, deep-copy reads
//	│  cache map[uuid]*conn  │
//	└───────────┬────────────┘
//	            │ Record (settings / secrets split)
//	┌───────────▼────────────┐
//	│       Repository       │  SQLite, one row per profile
//	└────────────────────────┘
//
// Secrets handling: a Record splits a profile into a secrets-free
// settings body and a system-owned secrets map. Agent-owned and
// not-saved secrets are stripped before a profile is written, so a
// database copy never leaks what an agent was trusted to keep.
//
// The Manager publishes add/update/remove/secrets-updated events
// through an EventSink;
// reads always return deep copies, so nothing a caller does to a
// returned connection reaches the cache without an explicit Update.
package store
