package profile

// ToMap converts the connection into its transport-neutral two-level map:
// kind name → property name → value. This is the sole serialization
// surface; any wire framing on top of it belongs to the transport layer.
//
// A setting whose serialization yields no properties under flags is
// omitted entirely, and a connection that serializes to zero kinds returns
// nil rather than an empty map.
func (c *Connection) ToMap(flags SerializeFlags) map[string]map[string]any {
	out := make(map[string]map[string]any, len(c.settings))
	for name, s := range c.settings {
		props := s.ToMap(flags)
		if len(props) == 0 {
			continue
		}
		out[name] = props
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// NewFromMap builds a fresh Connection from a serialized two-level map and
// verifies it.
//
// The parse is lenient: entries whose kind name the registry does not know
// are silently skipped, keeping forward compatibility with profiles
// written by a newer daemon that knows additional kinds. Malformed input
// therefore only fails when the surviving settings violate a structural
// invariant (a missing base setting, say), or when the connection kind's
// permissions entry has the wrong type (ErrPropertyTypeMismatch, checked
// before construction).
func NewFromMap(m map[string]map[string]any) (*Connection, error) {
	if err := validatePermissionsType(m); err != nil {
		return nil, err
	}

	c := New()
	if err := c.mapToConnection(m); err != nil {
		return nil, err
	}
	return c, nil
}
