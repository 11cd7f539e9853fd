package settings

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/calebmv/netweave-core/internal/profile"
)

// Property names of the connection kind.
const (
	PropID          = "id"
	PropUUID        = "uuid"
	PropType        = "type"
	PropPermissions = "permissions"
	PropAutoconnect = "autoconnect"
	PropTimestamp   = "timestamp"
	PropReadOnly    = "read-only"
	PropZone        = "zone"
)

var connectionSchema = []propSpec{
	{name: PropID, typ: typeString, isID: true},
	{name: PropUUID, typ: typeString},
	{name: PropType, typ: typeString},
	{name: PropPermissions, typ: typeStringList},
	{name: PropAutoconnect, typ: typeBool},
	{name: PropTimestamp, typ: typeInt},
	{name: PropReadOnly, typ: typeBool},
	{name: PropZone, typ: typeString},
}

func init() {
	profile.RegisterKind(profile.ConnectionSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewConnectionSetting(props)
	}, 0, errorDomainConnection)
}

// ConnectionSetting carries the identity properties every profile must
// have: a human-readable name, a stable UUID, and the base kind name that
// selects the hardware type.
type ConnectionSetting struct {
	base
}

// NewConnectionSetting builds a connection setting from a property map.
func NewConnectionSetting(props map[string]any) (*ConnectionSetting, error) {
	b, err := newBase(profile.ConnectionSettingName, connectionSchema, props)
	if err != nil {
		return nil, err
	}
	return &ConnectionSetting{base: b}, nil
}

// Verify checks the identity properties. The type property is left to the
// container, which resolves it against the registry and checks it names a
// base kind.
func (s *ConnectionSetting) Verify(_ []profile.Setting) error {
	if s.getString(PropID) == "" {
		return fmt.Errorf("%w: connection.id is required", ErrMissingProperty)
	}
	raw := s.getString(PropUUID)
	if raw == "" {
		return fmt.Errorf("%w: connection.uuid is required", ErrMissingProperty)
	}
	if _, err := uuid.Parse(raw); err != nil {
		return fmt.Errorf("%w: connection.uuid: %v", ErrInvalidProperty, err)
	}
	if s.has(PropType) && s.getString(PropType) == "" {
		return fmt.Errorf("%w: connection.type must not be empty when set", ErrInvalidProperty)
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *ConnectionSetting) Duplicate() profile.Setting {
	return &ConnectionSetting{base: s.base.clone()}
}

// ID returns the human-readable profile name.
func (s *ConnectionSetting) ID() string { return s.getString(PropID) }

// UUID returns the profile's stable identifier.
func (s *ConnectionSetting) UUID() string { return s.getString(PropUUID) }

// Type returns the base kind name the profile activates as.
func (s *ConnectionSetting) Type() string { return s.getString(PropType) }

// Permissions returns the user permission entries, or nil when the
// profile is system-wide.
func (s *ConnectionSetting) Permissions() []string { return s.getStringList(PropPermissions) }

// Autoconnect reports whether the daemon may activate the profile
// without an explicit request. Defaults to true when unset.
func (s *ConnectionSetting) Autoconnect() bool {
	if !s.has(PropAutoconnect) {
		return true
	}
	return s.getBool(PropAutoconnect)
}

// Timestamp returns the last-activation timestamp in Unix seconds.
func (s *ConnectionSetting) Timestamp() int64 { return s.getInt(PropTimestamp) }

// ConnectionFrom returns the connection setting held by c, or nil.
func ConnectionFrom(c *profile.Connection) *ConnectionSetting {
	s, _ := c.Setting(profile.ConnectionSettingName).(*ConnectionSetting)
	return s
}

// ID returns the profile's human-readable name, or "" when the
// connection setting is absent.
func ID(c *profile.Connection) string {
	if s := ConnectionFrom(c); s != nil {
		return s.ID()
	}
	return ""
}

// UUID returns the profile's stable identifier, or "".
func UUID(c *profile.Connection) string {
	if s := ConnectionFrom(c); s != nil {
		return s.UUID()
	}
	return ""
}
