package profile

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Reserved kind names with special registry semantics.
const (
	// ConnectionSettingName is the reserved kind name that identifies the
	// profile itself. Priority 0 belongs to it exclusively.
	ConnectionSettingName = "connection"

	// PPPoESettingName is allowed as a connection type even though its
	// priority is not 1. Its secrets must be solicited after lower-level
	// things like wifi security, so it keeps priority 3, but historically
	// it is accepted as a base type and that asymmetry is preserved.
	PPPoESettingName = "pppoe"
)

// Registration-time priority bounds. Priorities loosely follow the OSI
// layer model and control the order in which settings are asked for
// secrets: hardware must be unlocked before anything layered on top of it
// (a GSM PIN before PPP credentials, for example).
//
//	0: reserved for the connection setting
//	1: hardware base types (ethernet, wifi, gsm, vpn); valid in the
//	   connection setting's type property
//	2: hardware auxiliary settings (wifi security)
//	3: pre-IP settings (ppp, pppoe)
//	4: IP configuration
const (
	maxPriority  = 4
	basePriority = 1
)

// UnknownPriority is reported for kinds that were never registered.
// It is the maximum value so unregistered kinds sort after everything else
// in any priority ordering.
const UnknownPriority uint8 = math.MaxUint8

type kindInfo struct {
	factory     Factory
	priority    uint8
	errorDomain string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]kindInfo)
	logger     Logger = noopLogger{}
)

// SetLogger sets the logger used for registry diagnostics. Call during
// startup before lookups begin.
func SetLogger(l Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()
	logger = l
}

// RegisterKind registers a setting kind with the process-wide registry.
// Each kind registers exactly once at startup; the first registration for a
// name wins and later registrations for the same name are no-ops.
//
// Misuse is a programming error and panics: a priority above 4, an empty
// error domain, or priority 0 for any name other than "connection".
func RegisterKind(name string, factory Factory, priority uint8, errorDomain string) {
	if name == "" {
		panic("profile: RegisterKind with empty name")
	}
	if factory == nil {
		panic(fmt.Sprintf("profile: RegisterKind %q with nil factory", name))
	}
	if priority > maxPriority {
		panic(fmt.Sprintf("profile: RegisterKind %q with priority %d > %d", name, priority, maxPriority))
	}
	if errorDomain == "" {
		panic(fmt.Sprintf("profile: RegisterKind %q with empty error domain", name))
	}
	if priority == 0 && name != ConnectionSettingName {
		panic(fmt.Sprintf("profile: priority 0 is reserved for %q, got %q", ConnectionSettingName, name))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return
	}
	registry[name] = kindInfo{
		factory:     factory,
		priority:    priority,
		errorDomain: errorDomain,
	}
}

// LookupKind returns the factory for a registered kind name. A miss is
// reported as absence, not as an error; callers must treat an unknown name
// as "no such kind". A warning is logged for diagnostics.
func LookupKind(name string) (Factory, bool) {
	registryMu.RLock()
	info, ok := registry[name]
	log := logger
	registryMu.RUnlock()

	if !ok {
		log.Warn("unknown setting kind", "name", name)
		return nil, false
	}
	return info.factory, true
}

// KindForErrorDomain maps a setting-specific error domain back to the
// owning kind name. Used to attribute a per-setting failure for
// diagnostics. Returns false if no registered kind uses the domain.
func KindForErrorDomain(domain string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name, info := range registry {
		if info.errorDomain == domain {
			return name, true
		}
	}
	return "", false
}

// KindPriority returns the registered priority of a kind name, or
// UnknownPriority if the kind was never registered.
func KindPriority(name string) uint8 {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if info, ok := registry[name]; ok {
		return info.priority
	}
	return UnknownPriority
}

// IsBaseKind reports whether a kind is eligible as the connection setting's
// type: priority 1, or the grandfathered PPPoE kind.
func IsBaseKind(name string) bool {
	return KindPriority(name) == basePriority || name == PPPoESettingName
}

// RegisteredKinds returns the names of all registered kinds in sorted
// order.
func RegisteredKinds() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()

	sort.Strings(names)
	return names
}

// newSetting constructs a setting of the named kind from its property map.
// Returns ok=false (with a diagnostic log) for unknown kind names and for
// factory failures; both cases are skipped by the lenient deserialization
// paths rather than surfaced as errors.
func newSetting(name string, props map[string]any) (Setting, bool) {
	factory, ok := LookupKind(name)
	if !ok {
		return nil, false
	}
	setting, err := factory(props)
	if err != nil {
		registryMu.RLock()
		log := logger
		registryMu.RUnlock()
		log.Warn("discarding malformed setting", "name", name, "error", err)
		return nil, false
	}
	return setting, true
}
