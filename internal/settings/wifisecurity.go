package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// WifiSecuritySettingName is the registered name of the Wi-Fi security
// kind.
const WifiSecuritySettingName = "802-11-wireless-security"

// Property names of the wifi-security kind.
const (
	PropWifiSecKeyMgmt   = "key-mgmt"
	PropWifiSecPSK       = "psk"
	PropWifiSecPSKFlags  = "psk-flags"
	PropWifiSecWEPKey0   = "wep-key0"
	PropWifiSecWEPFlags  = "wep-key-flags"
	PropWifiSecAuthAlg   = "auth-alg"
	PropWifiSecProto     = "proto"
	PropWifiSecPairwise  = "pairwise"
	PropWifiSecGroup     = "group"
)

var wifiSecuritySchema = []propSpec{
	{name: PropWifiSecKeyMgmt, typ: typeString},
	{name: PropWifiSecPSK, typ: typeString, secret: true},
	{name: PropWifiSecPSKFlags, typ: typeInt},
	{name: PropWifiSecWEPKey0, typ: typeString, secret: true},
	{name: PropWifiSecWEPFlags, typ: typeInt},
	{name: PropWifiSecAuthAlg, typ: typeString},
	{name: PropWifiSecProto, typ: typeStringList},
	{name: PropWifiSecPairwise, typ: typeStringList},
	{name: PropWifiSecGroup, typ: typeStringList},
}

func init() {
	profile.RegisterKind(WifiSecuritySettingName, func(props map[string]any) (profile.Setting, error) {
		return NewWifiSecuritySetting(props)
	}, 2, errorDomainWifiSecurity)
}

// WifiSecuritySetting configures authentication for a wireless link. It
// is not a base kind; it rides alongside 802-11-wireless.
type WifiSecuritySetting struct {
	base
}

// NewWifiSecuritySetting builds a wifi-security setting from a property
// map.
func NewWifiSecuritySetting(props map[string]any) (*WifiSecuritySetting, error) {
	b, err := newBase(WifiSecuritySettingName, wifiSecuritySchema, props)
	if err != nil {
		return nil, err
	}
	return &WifiSecuritySetting{base: b}, nil
}

// Verify checks key-mgmt is set to an accepted scheme and the PSK, when
// present, has a usable length.
func (s *WifiSecuritySetting) Verify(_ []profile.Setting) error {
	switch s.getString(PropWifiSecKeyMgmt) {
	case "":
		return fmt.Errorf("%w: 802-11-wireless-security.key-mgmt is required", ErrMissingProperty)
	case "none", "wpa-psk", "wpa-eap", "ieee8021x", "sae":
	default:
		return fmt.Errorf("%w: 802-11-wireless-security.key-mgmt %q",
			ErrInvalidProperty, s.getString(PropWifiSecKeyMgmt))
	}
	if s.has(PropWifiSecPSK) {
		psk := s.getString(PropWifiSecPSK)
		if len(psk) < 8 || len(psk) > 64 {
			return fmt.Errorf("%w: 802-11-wireless-security.psk length %d",
				ErrInvalidProperty, len(psk))
		}
	}
	return nil
}

// NeedSecrets reports the PSK as needed for PSK-based key management when
// it is absent and not flagged not-required.
func (s *WifiSecuritySetting) NeedSecrets() []string {
	switch s.getString(PropWifiSecKeyMgmt) {
	case "wpa-psk", "sae":
		if s.has(PropWifiSecPSK) {
			return nil
		}
		if s.secretPropFlags(PropWifiSecPSK)&profile.SecretFlagNotRequired != 0 {
			return nil
		}
		return []string{PropWifiSecPSK}
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *WifiSecuritySetting) Duplicate() profile.Setting {
	return &WifiSecuritySetting{base: s.base.clone()}
}

// KeyMgmt returns the configured key management scheme.
func (s *WifiSecuritySetting) KeyMgmt() string { return s.getString(PropWifiSecKeyMgmt) }

// PSK returns the pre-shared key, "" when not loaded.
func (s *WifiSecuritySetting) PSK() string { return s.getString(PropWifiSecPSK) }

// WifiSecurityFrom returns the wifi-security setting held by c, or nil.
func WifiSecurityFrom(c *profile.Connection) *WifiSecuritySetting {
	s, _ := c.Setting(WifiSecuritySettingName).(*WifiSecuritySetting)
	return s
}
