package profile

import "fmt"

// Verify validates the connection's structural invariants and every held
// setting, short-circuiting on the first failure:
//
//  1. The reserved connection setting must be present
//     (ErrConnectionSettingNotFound).
//  2. Every setting's own Verify must pass, given the complete sibling set
//     so kinds can validate cross-setting references (a wifi setting
//     naming its security sibling, for example). The first failing
//     setting's error is surfaced as-is.
//  3. The connection setting's type property must be set, must resolve to
//     a setting present in this connection, and that setting's kind must
//     be a base type (ErrConnectionTypeInvalid, with a distinguishing
//     message per case). type=ppp is invalid, for example, while the
//     grandfathered type=pppoe is accepted.
//
// Callers must verify a connection before trusting it; construction alone
// enforces none of this.
func (c *Connection) Verify() error {
	con := c.settings[ConnectionSettingName]
	if con == nil {
		return ErrConnectionSettingNotFound
	}

	all := c.allSettings()
	for _, s := range all {
		if err := s.Verify(all); err != nil {
			return err
		}
	}

	ctype := settingString(con, TypeProperty)
	if ctype == "" {
		return fmt.Errorf("%w: connection type missing", ErrConnectionTypeInvalid)
	}

	base := c.SettingByName(ctype)
	if base == nil {
		return fmt.Errorf("%w: base setting type not found", ErrConnectionTypeInvalid)
	}

	if !IsBaseKind(base.Name()) {
		return fmt.Errorf("%w: connection type %q is not a base type", ErrConnectionTypeInvalid, ctype)
	}

	return nil
}
