package settings

import "errors"

// Domain errors for the settings package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, settings.ErrMissingProperty) {
//	    // handle missing required property
//	}
var (
	// ErrInvalidProperty is returned when a property value has the wrong
	// type or an out-of-range value.
	ErrInvalidProperty = errors.New("settings: invalid property")

	// ErrMissingProperty is returned by Verify when a required property
	// is not set.
	ErrMissingProperty = errors.New("settings: missing property")

	// ErrPropertyNotSecret is returned when a secrets update names a
	// known property that is not a secret.
	ErrPropertyNotSecret = errors.New("settings: property not a secret")

	// ErrInvalidSetting is returned by Verify for failures that are not
	// tied to one property, such as a dangling cross-setting reference.
	ErrInvalidSetting = errors.New("settings: invalid setting")
)

// Error domains registered with the profile kind registry. They let a
// caller attribute a setting-specific failure back to the owning kind.
const (
	errorDomainConnection   = "connection-setting-error"
	errorDomainWired        = "802-3-ethernet-setting-error"
	errorDomainWireless     = "802-11-wireless-setting-error"
	errorDomainWifiSecurity = "802-11-wireless-security-setting-error"
	errorDomainPPP          = "ppp-setting-error"
	errorDomainPPPoE        = "pppoe-setting-error"
	errorDomainGSM          = "gsm-setting-error"
	errorDomainIPv4         = "ipv4-setting-error"
	errorDomainVPN          = "vpn-setting-error"
)
