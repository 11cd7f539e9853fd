package settings

import (
	"fmt"
	"strconv"

	"github.com/calebmv/netweave-core/internal/profile"
)

// VPNSettingName is the registered name of the VPN kind.
const VPNSettingName = "vpn"

// Property names of the vpn kind.
const (
	PropVPNServiceType = "service-type"
	PropVPNUserName    = "user-name"
	PropVPNData        = "data"
	PropVPNSecrets     = "secrets"
)

var vpnSchema = []propSpec{
	{name: PropVPNServiceType, typ: typeString},
	{name: PropVPNUserName, typ: typeString},
	{name: PropVPNData, typ: typeStringMap},
	{name: PropVPNSecrets, typ: typeStringMap, secret: true},
}

func init() {
	profile.RegisterKind(VPNSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewVPNSetting(props)
	}, 1, errorDomainVPN)
}

// VPNSetting configures a plugin-driven tunnel. The daemon treats the
// data and secrets maps as opaque; only the plugin named by service-type
// interprets the keys. Per-secret storage flags live in the data map
// under "<key>-flags".
type VPNSetting struct {
	base
}

// NewVPNSetting builds a vpn setting from a property map.
func NewVPNSetting(props map[string]any) (*VPNSetting, error) {
	b, err := newBase(VPNSettingName, vpnSchema, props)
	if err != nil {
		return nil, err
	}
	return &VPNSetting{base: b}, nil
}

// Verify checks the plugin service name is present.
func (s *VPNSetting) Verify(_ []profile.Setting) error {
	if s.getString(PropVPNServiceType) == "" {
		return fmt.Errorf("%w: vpn.service-type is required", ErrMissingProperty)
	}
	return nil
}

// UpdateSecrets merges string values into the secrets map. Keys are
// plugin-defined, so anything with a string value is accepted; non-string
// values are an error. A nested "secrets" map is also accepted and
// flattened, matching the serialized shape.
func (s *VPNSetting) UpdateSecrets(secrets map[string]any) error {
	cur := s.getStringMap(PropVPNSecrets)
	if cur == nil {
		cur = make(map[string]string)
	}
	for key, raw := range secrets {
		switch v := raw.(type) {
		case string:
			cur[key] = v
		case map[string]any:
			if key != PropVPNSecrets {
				return fmt.Errorf("%w: vpn.%s", ErrInvalidProperty, key)
			}
			for k, item := range v {
				str, ok := item.(string)
				if !ok {
					return fmt.Errorf("%w: vpn.secrets.%s: expected string, got %T",
						ErrInvalidProperty, k, item)
				}
				cur[k] = str
			}
		case map[string]string:
			if key != PropVPNSecrets {
				return fmt.Errorf("%w: vpn.%s", ErrInvalidProperty, key)
			}
			for k, str := range v {
				cur[k] = str
			}
		default:
			return fmt.Errorf("%w: vpn.%s: expected string, got %T", ErrInvalidProperty, key, raw)
		}
	}
	s.props[PropVPNSecrets] = cur
	return nil
}

// ClearSecrets removes entries from the secrets map. Each key is offered
// to the filter with flags read from the data map's "<key>-flags" entry.
func (s *VPNSetting) ClearSecrets(filter profile.SecretFilter) {
	cur := s.getStringMap(PropVPNSecrets)
	if len(cur) == 0 {
		return
	}
	data := s.getStringMap(PropVPNData)
	for key := range cur {
		if filter != nil && !filter(VPNSettingName, key, vpnSecretFlags(data, key)) {
			continue
		}
		delete(cur, key)
	}
	if len(cur) == 0 {
		delete(s.props, PropVPNSecrets)
		return
	}
	s.props[PropVPNSecrets] = cur
}

func vpnSecretFlags(data map[string]string, key string) profile.SecretFlags {
	raw, ok := data[key+secretFlagsSuffix]
	if !ok {
		return profile.SecretFlagNone
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return profile.SecretFlagNone
	}
	return profile.SecretFlags(n)
}

// Duplicate returns an independent deep copy.
func (s *VPNSetting) Duplicate() profile.Setting {
	return &VPNSetting{base: s.base.clone()}
}

// ServiceType returns the VPN plugin service name.
func (s *VPNSetting) ServiceType() string { return s.getString(PropVPNServiceType) }

// Data returns a copy of the plugin configuration map.
func (s *VPNSetting) Data() map[string]string { return s.getStringMap(PropVPNData) }

// Secrets returns a copy of the plugin secrets map.
func (s *VPNSetting) Secrets() map[string]string { return s.getStringMap(PropVPNSecrets) }

// VPNFrom returns the vpn setting held by c, or nil.
func VPNFrom(c *profile.Connection) *VPNSetting {
	s, _ := c.Setting(VPNSettingName).(*VPNSetting)
	return s
}
