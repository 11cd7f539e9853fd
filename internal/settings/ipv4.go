package settings

import (
	"fmt"
	"net/netip"

	"github.com/calebmv/netweave-core/internal/profile"
)

// IPv4SettingName is the registered name of the IPv4 configuration kind.
const IPv4SettingName = "ipv4"

// Accepted values of the ipv4 method property.
const (
	IPv4MethodAuto      = "auto"
	IPv4MethodManual    = "manual"
	IPv4MethodLinkLocal = "link-local"
	IPv4MethodShared    = "shared"
	IPv4MethodDisabled  = "disabled"
)

// Property names of the ipv4 kind.
const (
	PropIPv4Method        = "method"
	PropIPv4Addresses     = "addresses"
	PropIPv4Gateway       = "gateway"
	PropIPv4DNS           = "dns"
	PropIPv4DNSSearch     = "dns-search"
	PropIPv4NeverDefault  = "never-default"
	PropIPv4IgnoreAutoDNS = "ignore-auto-dns"
)

var ipv4Schema = []propSpec{
	{name: PropIPv4Method, typ: typeString},
	{name: PropIPv4Addresses, typ: typeStringList},
	{name: PropIPv4Gateway, typ: typeString},
	{name: PropIPv4DNS, typ: typeStringList},
	{name: PropIPv4DNSSearch, typ: typeStringList},
	{name: PropIPv4NeverDefault, typ: typeBool},
	{name: PropIPv4IgnoreAutoDNS, typ: typeBool},
}

func init() {
	profile.RegisterKind(IPv4SettingName, func(props map[string]any) (profile.Setting, error) {
		return NewIPv4Setting(props)
	}, 4, errorDomainIPv4)
}

// IPv4Setting configures layer-3 addressing for a profile. Addresses use
// CIDR notation ("192.0.2.10/24"); DNS servers are plain addresses.
type IPv4Setting struct {
	base
}

// NewIPv4Setting builds an ipv4 setting from a property map.
func NewIPv4Setting(props map[string]any) (*IPv4Setting, error) {
	b, err := newBase(IPv4SettingName, ipv4Schema, props)
	if err != nil {
		return nil, err
	}
	return &IPv4Setting{base: b}, nil
}

// Verify checks the method is set and that manual configuration actually
// carries addresses while disabled configuration carries none.
func (s *IPv4Setting) Verify(_ []profile.Setting) error {
	method := s.getString(PropIPv4Method)
	switch method {
	case "":
		return fmt.Errorf("%w: ipv4.method is required", ErrMissingProperty)
	case IPv4MethodAuto, IPv4MethodManual, IPv4MethodLinkLocal, IPv4MethodShared, IPv4MethodDisabled:
	default:
		return fmt.Errorf("%w: ipv4.method %q", ErrInvalidProperty, method)
	}

	addrs := s.getStringList(PropIPv4Addresses)
	switch method {
	case IPv4MethodManual:
		if len(addrs) == 0 {
			return fmt.Errorf("%w: ipv4.addresses required for method manual", ErrMissingProperty)
		}
	case IPv4MethodDisabled, IPv4MethodLinkLocal, IPv4MethodShared:
		if len(addrs) > 0 {
			return fmt.Errorf("%w: ipv4.addresses not allowed for method %s", ErrInvalidProperty, method)
		}
	}

	for _, a := range addrs {
		p, err := netip.ParsePrefix(a)
		if err != nil {
			return fmt.Errorf("%w: ipv4.addresses %q: %v", ErrInvalidProperty, a, err)
		}
		if !p.Addr().Is4() {
			return fmt.Errorf("%w: ipv4.addresses %q is not IPv4", ErrInvalidProperty, a)
		}
	}
	if gw := s.getString(PropIPv4Gateway); gw != "" {
		a, err := netip.ParseAddr(gw)
		if err != nil || !a.Is4() {
			return fmt.Errorf("%w: ipv4.gateway %q", ErrInvalidProperty, gw)
		}
	}
	for _, d := range s.getStringList(PropIPv4DNS) {
		a, err := netip.ParseAddr(d)
		if err != nil || !a.Is4() {
			return fmt.Errorf("%w: ipv4.dns %q", ErrInvalidProperty, d)
		}
	}
	return nil
}

// Duplicate returns an independent deep copy.
func (s *IPv4Setting) Duplicate() profile.Setting {
	return &IPv4Setting{base: s.base.clone()}
}

// Method returns the configured addressing method.
func (s *IPv4Setting) Method() string { return s.getString(PropIPv4Method) }

// Addresses returns the static addresses in CIDR notation.
func (s *IPv4Setting) Addresses() []string { return s.getStringList(PropIPv4Addresses) }

// IPv4From returns the ipv4 setting held by c, or nil.
func IPv4From(c *profile.Connection) *IPv4Setting {
	s, _ := c.Setting(IPv4SettingName).(*IPv4Setting)
	return s
}
