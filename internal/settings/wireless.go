package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// WirelessSettingName is the registered name of the Wi-Fi kind.
const WirelessSettingName = "802-11-wireless"

// Property names of the wireless kind.
const (
	PropWirelessSSID     = "ssid"
	PropWirelessMode     = "mode"
	PropWirelessBand     = "band"
	PropWirelessChannel  = "channel"
	PropWirelessMAC      = "mac-address"
	PropWirelessHidden   = "hidden"
	PropWirelessSecurity = "security"
)

var wirelessSchema = []propSpec{
	{name: PropWirelessSSID, typ: typeString},
	{name: PropWirelessMode, typ: typeString},
	{name: PropWirelessBand, typ: typeString},
	{name: PropWirelessChannel, typ: typeInt},
	{name: PropWirelessMAC, typ: typeString},
	{name: PropWirelessHidden, typ: typeBool},
	{name: PropWirelessSecurity, typ: typeString},
}

func init() {
	profile.RegisterKind(WirelessSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewWirelessSetting(props)
	}, 1, errorDomainWireless)
}

// WirelessSetting configures a Wi-Fi link. When its security property
// names the wifi-security kind, that sibling must be present in the same
// connection.
type WirelessSetting struct {
	base
}

// NewWirelessSetting builds a wireless setting from a property map.
func NewWirelessSetting(props map[string]any) (*WirelessSetting, error) {
	b, err := newBase(WirelessSettingName, wirelessSchema, props)
	if err != nil {
		return nil, err
	}
	return &WirelessSetting{base: b}, nil
}

// Verify checks the SSID is set, the mode and band are accepted values,
// and a declared security sibling actually exists in all.
func (s *WirelessSetting) Verify(all []profile.Setting) error {
	if s.getString(PropWirelessSSID) == "" {
		return fmt.Errorf("%w: 802-11-wireless.ssid is required", ErrMissingProperty)
	}
	if s.has(PropWirelessMode) {
		switch s.getString(PropWirelessMode) {
		case "infrastructure", "adhoc", "ap":
		default:
			return fmt.Errorf("%w: 802-11-wireless.mode %q", ErrInvalidProperty, s.getString(PropWirelessMode))
		}
	}
	if s.has(PropWirelessBand) {
		switch s.getString(PropWirelessBand) {
		case "a", "bg":
		default:
			return fmt.Errorf("%w: 802-11-wireless.band %q", ErrInvalidProperty, s.getString(PropWirelessBand))
		}
	}
	if sec := s.getString(PropWirelessSecurity); sec != "" {
		if sec != WifiSecuritySettingName {
			return fmt.Errorf("%w: 802-11-wireless.security %q", ErrInvalidProperty, sec)
		}
		found := false
		for _, other := range all {
			if other.Name() == sec {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: 802-11-wireless.security names %s but the setting is absent",
				ErrInvalidSetting, sec)
		}
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *WirelessSetting) Duplicate() profile.Setting {
	return &WirelessSetting{base: s.base.clone()}
}

// SSID returns the configured network name.
func (s *WirelessSetting) SSID() string { return s.getString(PropWirelessSSID) }

// Mode returns the operating mode, "" meaning infrastructure.
func (s *WirelessSetting) Mode() string { return s.getString(PropWirelessMode) }

// WirelessFrom returns the wireless setting held by c, or nil.
func WirelessFrom(c *profile.Connection) *WirelessSetting {
	s, _ := c.Setting(WirelessSettingName).(*WirelessSetting)
	return s
}
