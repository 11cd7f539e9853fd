package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// WiredSettingName is the registered name of the wired ethernet kind.
const WiredSettingName = "802-3-ethernet"

// Property names of the wired kind.
const (
	PropWiredMACAddress = "mac-address"
	PropWiredMTU        = "mtu"
	PropWiredSpeed      = "speed"
	PropWiredDuplex     = "duplex"
	PropWiredAutoNeg    = "auto-negotiate"
)

var wiredSchema = []propSpec{
	{name: PropWiredMACAddress, typ: typeString},
	{name: PropWiredMTU, typ: typeInt},
	{name: PropWiredSpeed, typ: typeInt},
	{name: PropWiredDuplex, typ: typeString},
	{name: PropWiredAutoNeg, typ: typeBool},
}

func init() {
	profile.RegisterKind(WiredSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewWiredSetting(props)
	}, 1, errorDomainWired)
}

// WiredSetting configures an ethernet link. It is a base kind: a profile
// whose connection type is 802-3-ethernet activates on a wired device.
type WiredSetting struct {
	base
}

// NewWiredSetting builds a wired setting from a property map.
func NewWiredSetting(props map[string]any) (*WiredSetting, error) {
	b, err := newBase(WiredSettingName, wiredSchema, props)
	if err != nil {
		return nil, err
	}
	return &WiredSetting{base: b}, nil
}

// Verify checks duplex is one of the accepted values and the MTU is sane.
func (s *WiredSetting) Verify(_ []profile.Setting) error {
	if s.has(PropWiredDuplex) {
		switch s.getString(PropWiredDuplex) {
		case "half", "full":
		default:
			return fmt.Errorf("%w: 802-3-ethernet.duplex must be half or full", ErrInvalidProperty)
		}
	}
	if s.has(PropWiredMTU) && s.getInt(PropWiredMTU) < 0 {
		return fmt.Errorf("%w: 802-3-ethernet.mtu must not be negative", ErrInvalidProperty)
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *WiredSetting) Duplicate() profile.Setting {
	return &WiredSetting{base: s.base.clone()}
}

// MACAddress returns the interface restriction, or "" for any device.
func (s *WiredSetting) MACAddress() string { return s.getString(PropWiredMACAddress) }

// MTU returns the configured MTU, 0 meaning device default.
func (s *WiredSetting) MTU() int64 { return s.getInt(PropWiredMTU) }

// WiredFrom returns the wired setting held by c, or nil.
func WiredFrom(c *profile.Connection) *WiredSetting {
	s, _ := c.Setting(WiredSettingName).(*WiredSetting)
	return s
}
