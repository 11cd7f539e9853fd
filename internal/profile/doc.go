// Package profile provides the connection profile container for Netweave Core.
//
// A connection profile (Connection) is a named bundle of typed configuration
// fragments called settings. Together the settings fully describe how to bring
// up a network interface: the connection identity, the link layer
// (ethernet, wifi, gsm), link security, PPP/PPPoE, and IP configuration.
// The daemon validates, compares, serializes, and extracts secrets from
// stored profiles through this package.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│                          Connection Profile                          │
//	│                                                                      │
//	│  ┌───────────────┐   ┌────────────────┐   ┌──────────────────────┐   │
//	│  │   Registry    │   │   Connection   │   │  Verify / Compare /  │   │
//	│  │ (registry.go) │◀──│(connection.go) │──▶│   Diff / Secrets /   │   │
//	│  │               │   │                │   │      Serialize       │   │
//	│  │ • kind→factory│   │ • one setting  │   │ • structural checks  │   │
//	│  │ • priorities  │   │   per kind     │   │ • per-property diffs │   │
//	│  │ • base types  │   │ • opaque path  │   │ • secrets protocol   │   │
//	│  └───────────────┘   └────────────────┘   └──────────────────────┘   │
//	└──────────────────────────────────────────────────────────────────────┘
//	          ▲
//	          │ RegisterKind() at init
//	┌─────────┴──────────┐
//	│ internal/settings  │  concrete setting kinds (connection, ethernet,
//	└────────────────────┘  wifi, wifi security, ppp, pppoe, gsm, ipv4, vpn)
//
// # Key Types
//
//   - Connection: the aggregate container, at most one setting per kind
//   - Setting: the capability interface every setting kind implements
//   - CompareFlags / SerializeFlags: behaviour modifiers for comparison
//     and map conversion
//   - DiffResult: kind name → property name → DiffFlags
//
// # Usage
//
//	conn, err := profile.NewFromMap(serialized)
//	if err != nil {
//	    return err
//	}
//	if other := load(); !profile.Compare(conn, other, profile.CompareExact) {
//	    _, diffs := profile.Diff(conn, other, profile.CompareExact)
//	    // inspect diffs
//	}
//	if kind, hints := conn.NeedSecrets(); kind != "" {
//	    // solicit the hinted secrets for that setting kind
//	}
//
// # Thread Safety
//
// A Connection is NOT internally synchronized. Access one instance from a
// single goroutine, or hand an independent copy across a boundary with
// Duplicate(). The kind registry is populated once at startup and is safe
// for concurrent reads afterwards.
package profile
