package settings

import (
	"fmt"

	"github.com/calebmv/netweave-core/internal/profile"
)

// PPPSettingName is the registered name of the PPP link-options kind.
const PPPSettingName = "ppp"

// Property names of the ppp kind.
const (
	PropPPPNoAuth      = "noauth"
	PropPPPRefuseEAP   = "refuse-eap"
	PropPPPRefusePAP   = "refuse-pap"
	PropPPPRefuseCHAP  = "refuse-chap"
	PropPPPNoDeflate   = "nodeflate"
	PropPPPMRU         = "mru"
	PropPPPMTU         = "mtu"
	PropPPPLCPInterval = "lcp-echo-interval"
	PropPPPLCPFailure  = "lcp-echo-failure"
)

var pppSchema = []propSpec{
	{name: PropPPPNoAuth, typ: typeBool},
	{name: PropPPPRefuseEAP, typ: typeBool},
	{name: PropPPPRefusePAP, typ: typeBool},
	{name: PropPPPRefuseCHAP, typ: typeBool},
	{name: PropPPPNoDeflate, typ: typeBool},
	{name: PropPPPMRU, typ: typeInt},
	{name: PropPPPMTU, typ: typeInt},
	{name: PropPPPLCPInterval, typ: typeInt},
	{name: PropPPPLCPFailure, typ: typeInt},
}

func init() {
	profile.RegisterKind(PPPSettingName, func(props map[string]any) (profile.Setting, error) {
		return NewPPPSetting(props)
	}, 3, errorDomainPPP)
}

// PPPSetting tunes the point-to-point link layer used by PPPoE and GSM
// profiles. It is never a base kind.
type PPPSetting struct {
	base
}

// NewPPPSetting builds a ppp setting from a property map.
func NewPPPSetting(props map[string]any) (*PPPSetting, error) {
	b, err := newBase(PPPSettingName, pppSchema, props)
	if err != nil {
		return nil, err
	}
	return &PPPSetting{base: b}, nil
}

// Verify checks the echo options come as a pair and sizes are not
// negative.
func (s *PPPSetting) Verify(_ []profile.Setting) error {
	if s.has(PropPPPLCPFailure) && !s.has(PropPPPLCPInterval) {
		return fmt.Errorf("%w: ppp.lcp-echo-failure requires lcp-echo-interval", ErrInvalidSetting)
	}
	for _, name := range []string{PropPPPMRU, PropPPPMTU, PropPPPLCPInterval, PropPPPLCPFailure} {
		if s.has(name) && s.getInt(name) < 0 {
			return fmt.Errorf("%w: ppp.%s must not be negative", ErrInvalidProperty, name)
		}
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *PPPSetting) Duplicate() profile.Setting {
	return &PPPSetting{base: s.base.clone()}
}

// PPPFrom returns the ppp setting held by c, or nil.
func PPPFrom(c *profile.Connection) *PPPSetting {
	s, _ := c.Setting(PPPSettingName).(*PPPSetting)
	return s
}
