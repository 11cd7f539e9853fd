package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Property names of the connection setting that the container itself
// inspects. All other properties are opaque to this package.
const (
	// TypeProperty names the base setting kind the profile activates.
	TypeProperty = "type"

	// PermissionsProperty restricts which users may activate the profile.
	// Its serialized value must be a list of strings.
	PermissionsProperty = "permissions"
)

// Connection is the aggregate container for one network profile. It holds
// at most one setting instance per kind and owns every setting exclusively;
// settings are never shared between connections.
//
// A Connection is not internally synchronized (see the package doc).
type Connection struct {
	// settings is keyed by kind name. Order is irrelevant; iteration is
	// sorted where determinism matters.
	settings map[string]Setting

	// path is an out-of-band back-reference supplied by the caller (for
	// example the object path a settings service exported the profile
	// under). It is never validated and never serialized.
	path string

	// Notification listeners, dispatched synchronously.
	secretsUpdated []func(settingName string)
	secretsCleared []func()
}

// New creates an empty Connection with no settings.
func New() *Connection {
	return &Connection{
		settings: make(map[string]Setting),
	}
}

// AddSetting inserts a setting, replacing any previous setting of the same
// kind. The connection takes exclusive ownership; the previous setting, if
// any, is dropped.
func (c *Connection) AddSetting(s Setting) {
	if s == nil {
		return
	}
	c.settings[s.Name()] = s
}

// RemoveSetting removes and discards the setting of the given kind.
// No-op if the kind is not present.
func (c *Connection) RemoveSetting(name string) {
	delete(c.settings, name)
}

// Setting returns the setting with the given kind name, or nil if the
// connection holds none of that kind.
func (c *Connection) Setting(name string) Setting {
	return c.settings[name]
}

// SettingByName resolves name through the kind registry first and then
// returns the matching setting. Unlike Setting, an unregistered name is
// always absent even if a setting under that name were present.
func (c *Connection) SettingByName(name string) Setting {
	if _, ok := LookupKind(name); !ok {
		return nil
	}
	return c.settings[name]
}

// SettingCount returns the number of settings currently held.
func (c *Connection) SettingCount() int {
	return len(c.settings)
}

// SettingNames returns the kind names of all held settings in sorted order.
func (c *Connection) SettingNames() []string {
	names := make([]string, 0, len(c.settings))
	for name := range c.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// allSettings returns the held settings ordered by kind name. Sorted order
// keeps verification and diff output deterministic; the container itself
// attaches no meaning to it.
func (c *Connection) allSettings() []Setting {
	all := make([]Setting, 0, len(c.settings))
	for _, name := range c.SettingNames() {
		all = append(all, c.settings[name])
	}
	return all
}

// ReplaceSettings replaces the connection's entire setting set from a
// serialized two-level map (kind name → property name → value).
//
// The permissions entry of the connection kind, if present, is type-checked
// before any mutation (ErrPropertyTypeMismatch on failure). All current
// settings are then unconditionally cleared, one setting is constructed per
// entry whose kind name the registry knows (unknown names are silently
// skipped), and the result is verified.
//
// Replace is not transactional: if verification fails, the connection is
// left holding the new, invalid setting set rather than rolled back to its
// prior state. Callers must treat a failed replace as requiring a rebuild
// or a fresh re-check, not as a no-op.
func (c *Connection) ReplaceSettings(newSettings map[string]map[string]any) error {
	if err := validatePermissionsType(newSettings); err != nil {
		return err
	}
	return c.mapToConnection(newSettings)
}

// mapToConnection clears the connection and rebuilds it from a serialized
// map, then verifies. Shared by ReplaceSettings and NewFromMap.
func (c *Connection) mapToConnection(m map[string]map[string]any) error {
	for name := range c.settings {
		delete(c.settings, name)
	}
	for name, props := range m {
		if setting, ok := newSetting(name, props); ok {
			c.AddSetting(setting)
		}
	}
	return c.Verify()
}

// validatePermissionsType ensures the connection kind's permissions entry,
// if present in a serialized map, is a list of strings. Catching this
// before mutation keeps a bad permissions value from being dropped
// silently during construction.
func validatePermissionsType(m map[string]map[string]any) error {
	conProps, ok := m[ConnectionSettingName]
	if !ok {
		return nil
	}
	perms, ok := conProps[PermissionsProperty]
	if !ok {
		return nil
	}

	switch v := perms.(type) {
	case []string:
		return nil
	case []any:
		for _, elem := range v {
			if _, ok := elem.(string); !ok {
				return fmt.Errorf("%w: permissions must be a list of strings", ErrPropertyTypeMismatch)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: permissions must be a list of strings", ErrPropertyTypeMismatch)
	}
}

// Duplicate returns a deep copy of the connection. Every setting is
// duplicated and the path is copied; the result shares nothing with the
// receiver. Duplication is the sanctioned way to hand a profile across a
// goroutine boundary. Listeners are not carried over.
func (c *Connection) Duplicate() *Connection {
	dup := New()
	dup.path = c.path
	for _, s := range c.settings {
		dup.AddSetting(s.Duplicate())
	}
	return dup
}

// SetPath records a caller-supplied back-reference for the connection.
// The path is never part of validated state and never serialized.
func (c *Connection) SetPath(path string) {
	c.path = path
}

// Path returns the back-reference previously set with SetPath.
func (c *Connection) Path() string {
	return c.path
}

// IsType reports whether the profile's type property names the given kind.
// Returns false when the connection setting or its type is missing.
func (c *Connection) IsType(kind string) bool {
	con := c.settings[ConnectionSettingName]
	if con == nil {
		return false
	}
	return settingString(con, TypeProperty) == kind
}

// Dump renders the connection for debugging ONLY. The output includes
// secrets and its format is not stable; never machine-parse or persist it.
func (c *Connection) Dump() string {
	var b strings.Builder
	for _, name := range c.SettingNames() {
		props := c.settings[name].ToMap(SerializeAll)
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(&b, "[%s]\n", name)
		for _, k := range keys {
			fmt.Fprintf(&b, "\t%s = %v\n", k, props[k])
		}
	}
	return b.String()
}

// settingString reads a single string property from a setting through its
// serialized form. Missing and non-string values read as empty.
func settingString(s Setting, prop string) string {
	v, _ := s.ToMap(SerializeAll)[prop].(string)
	return v
}
