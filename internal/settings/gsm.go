package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// GSMSettingName is the registered name of the mobile broadband kind.
const GSMSettingName = "gsm"

// Property names of the gsm kind.
const (
	PropGSMNumber        = "number"
	PropGSMUsername      = "username"
	PropGSMPassword      = "password"
	PropGSMPasswordFlags = "password-flags"
	PropGSMAPN           = "apn"
	PropGSMNetworkID     = "network-id"
	PropGSMPIN           = "pin"
	PropGSMPINFlags      = "pin-flags"
	PropGSMHomeOnly      = "home-only"
)

var gsmSchema = []propSpec{
	{name: PropGSMNumber, typ: typeString},
	{name: PropGSMUsername, typ: typeString},
	{name: PropGSMPassword, typ: typeString, secret: true},
	{name: PropGSMPasswordFlags, typ: typeInt},
	{name: PropGSMAPN, typ: typeString},
	{name: PropGSMNetworkID, typ: typeString},
	{name: PropGSMPIN, typ: typeString, secret: true},
	{name: PropGSMPINFlags, typ: typeInt},
	{name: PropGSMHomeOnly, typ: typeBool},
}

func init() {
	profile.RegisterKind(GSMSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewGSMSetting(props)
	}, 1, errorDomainGSM)
}

// GSMSetting configures a cellular data connection. It is a base kind.
type GSMSetting struct {
	base
}

// NewGSMSetting builds a gsm setting from a property map.
func NewGSMSetting(props map[string]any) (*GSMSetting, error) {
	b, err := newBase(GSMSettingName, gsmSchema, props)
	if err != nil {
		return nil, err
	}
	return &GSMSetting{base: b}, nil
}

// Verify checks the dial-up number is present and the APN, when set, is
// plain ASCII as modems require.
func (s *GSMSetting) Verify(_ []profile.Setting) error {
	if s.getString(PropGSMNumber) == "" {
		return fmt.Errorf("%w: gsm.number is required", ErrMissingProperty)
	}
	if apn := s.getString(PropGSMAPN); apn != "" {
		for _, r := range apn {
			if r > 0x7e || r < 0x20 {
				return fmt.Errorf("%w: gsm.apn contains non-ASCII characters", ErrInvalidProperty)
			}
		}
	}
	return nil
}

// NeedSecrets reports the account password as needed when a username is
// configured but the password is absent. Whether the SIM wants its PIN is
// a modem-state question this layer cannot answer, so the PIN is never
// reported here.
func (s *GSMSetting) NeedSecrets() []string {
	if s.getString(PropGSMUsername) == "" {
		return nil
	}
	if s.has(PropGSMPassword) {
		return nil
	}
	if s.secretPropFlags(PropGSMPassword)&profile.SecretFlagNotRequired != 0 {
		return nil
	}
	return []string{PropGSMPassword}
}

// Duplicate returns an independent deep copy.
func (s *GSMSetting) Duplicate() profile.Setting {
	return &GSMSetting{base: s.base.clone()}
}

// APN returns the configured access point name.
func (s *GSMSetting) APN() string { return s.getString(PropGSMAPN) }

// GSMFrom returns the gsm setting held by c, or nil.
func GSMFrom(c *profile.Connection) *GSMSetting {
	s, _ := c.Setting(GSMSettingName).(*GSMSetting)
	return s
}
