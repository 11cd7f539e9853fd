package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// Property names of the pppoe kind.
const (
	PropPPPoEService       = "service"
	PropPPPoEUsername      = "username"
	PropPPPoEPassword      = "password"
	PropPPPoEPasswordFlags = "password-flags"
)

var pppoeSchema = []propSpec{
	{name: PropPPPoEService, typ: typeString},
	{name: PropPPPoEUsername, typ: typeString},
	{name: PropPPPoEPassword, typ: typeString, secret: true},
	{name: PropPPPoEPasswordFlags, typ: typeInt},
}

func init() {
	profile.RegisterKind(profile.PPPoESettingName, func(props map[string]any) (profile.Setting, error) {
		return NewPPPoESetting(props)
	}, 3, errorDomainPPPoE)
}

// PPPoESetting configures a PPP-over-ethernet session. Despite its
// priority it counts as a base kind: a connection may carry type pppoe
// directly, with the wired setting describing the underlying link.
type PPPoESetting struct {
	base
}

// NewPPPoESetting builds a pppoe setting from a property map.
func NewPPPoESetting(props map[string]any) (*PPPoESetting, error) {
	b, err := newBase(profile.PPPoESettingName, pppoeSchema, props)
	if err != nil {
		return nil, err
	}
	return &PPPoESetting{base: b}, nil
}

// Verify checks the account username is present.
func (s *PPPoESetting) Verify(_ []profile.Setting) error {
	if s.getString(PropPPPoEUsername) == "" {
		return fmt.Errorf("%w: pppoe.username is required", ErrMissingProperty)
	}
	return nil
}

// NeedSecrets reports the password as needed when it is absent and not
// flagged not-required.
func (s *PPPoESetting) NeedSecrets() []string {
	if s.has(PropPPPoEPassword) {
		return nil
	}
	if s.secretPropFlags(PropPPPoEPassword)&profile.SecretFlagNotRequired != 0 {
		return nil
	}
	return []string{PropPPPoEPassword}
}

// Duplicate returns an independent deep copy.
func (s *PPPoESetting) Duplicate() profile.Setting {
	return &PPPoESetting{base: s.base.clone()}
}

// Username returns the account name.
func (s *PPPoESetting) Username() string { return s.getString(PropPPPoEUsername) }

// Password returns the account password, "" when not loaded.
func (s *PPPoESetting) Password() string { return s.getString(PropPPPoEPassword) }

// PPPoEFrom returns the pppoe setting held by c, or nil.
func PPPoEFrom(c *profile.Connection) *PPPoESetting {
	s, _ := c.Setting(profile.PPPoESettingName).(*PPPoESetting)
	return s
}
