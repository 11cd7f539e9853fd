package profile

import "errors"

// Domain errors for the profile package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, profile.ErrConnectionTypeInvalid) {
//	    // handle invalid type case
//	}
var (
	// ErrConnectionSettingNotFound is returned by Verify when the reserved
	// "connection" setting is absent.
	ErrConnectionSettingNotFound = errors.New("profile: connection setting not found")

	// ErrConnectionTypeInvalid is returned by Verify when the connection
	// setting's type property is missing, does not resolve to a setting
	// present in the connection, or names a kind that is not a base type.
	ErrConnectionTypeInvalid = errors.New("profile: connection type invalid")

	// ErrSettingNotFound is returned by secrets operations when the named
	// setting kind is not present in the connection.
	ErrSettingNotFound = errors.New("profile: setting not found")

	// ErrPropertyTypeMismatch is returned when the connection setting's
	// permissions entry in a serialized map is not a list of strings.
	ErrPropertyTypeMismatch = errors.New("profile: property type mismatch")
)
