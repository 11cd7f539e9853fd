// Package settings provides the concrete setting kinds that make up a
// connection profile: the connection identity setting plus link-layer,
// security, PPP/PPPoE, GSM, IP, and VPN settings.
//
// Every kind implements profile.Setting and registers itself with the
// profile kind registry at init, so importing this package (blank import
// is enough) makes the full kind set available:
//
//	import _ "github.com/calebmv/netweave-core/internal/settings"
//
// # Property model
//
// A kind is a schema (ordered property descriptors: name, value type,
// secret marking) over a map of set properties. The shared base derives
// comparison, diffing, serialization, secrets handling, and duplication
// from the schema; each kind adds its own verification rules, secrets
// discovery, and typed accessors.
//
// Secrets carry a "<property>-flags" companion property describing how the
// secret is stored (agent-owned, not saved, not required); the companions
// are ordinary integer properties and travel with the setting.
//
// # Registered kinds and priorities
//
//	connection                  0  (reserved)
//	802-3-ethernet              1  base type
//	802-11-wireless             1  base type
//	gsm                         1  base type
//	vpn                         1  base type
//	802-11-wireless-security    2
//	ppp                         3
//	pppoe                       3  (accepted as a base type regardless)
//	ipv4                        4
package settings
