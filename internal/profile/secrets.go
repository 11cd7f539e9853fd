package profile

import (
	"fmt"
	"sort"
)

// NeedSecrets returns the kind name of the first setting that needs
// secrets, together with its hint list of property names, or ("", nil) if
// no setting needs secrets.
//
// Settings are asked in ascending registry priority order, so secrets are
// solicited in dependency order: a GSM PIN unlocks the hardware before
// higher-layer PPP credentials are even relevant. Ties keep a stable,
// name-sorted order; kinds unknown to the registry sort last.
func (c *Connection) NeedSecrets() (string, []string) {
	settings := c.allSettings()
	sort.SliceStable(settings, func(i, j int) bool {
		return KindPriority(settings[i].Name()) < KindPriority(settings[j].Name())
	})

	for _, s := range settings {
		if hints := s.NeedSecrets(); hints != nil {
			return s.Name(), hints
		}
	}
	return "", nil
}

// UpdateSecrets merges secrets into the connection's settings.
//
// With a non-empty settingName, only that setting is updated
// (ErrSettingNotFound if absent). The secrets map may be either the
// setting's own property map or a full serialized connection as produced
// by ToMap; in the latter case the slice keyed by settingName is unwrapped
// and used.
//
// With an empty settingName, secrets must be a full serialized connection
// (kind name → nested secrets map) and every named setting is updated. The
// first missing kind or per-setting failure aborts the whole operation.
//
// On success a "secrets updated" notification is dispatched carrying the
// setting name, or the empty string for the bulk case.
func (c *Connection) UpdateSecrets(settingName string, secrets map[string]any) error {
	if settingName != "" {
		setting := c.SettingByName(settingName)
		if setting == nil {
			return fmt.Errorf("%w: %s", ErrSettingNotFound, settingName)
		}

		// Accept a full serialized connection as well as a bare setting
		// map by unwrapping the relevant slice when present.
		props := secrets
		if nested, ok := secrets[settingName].(map[string]any); ok {
			props = nested
		}
		if err := setting.UpdateSecrets(props); err != nil {
			return err
		}
	} else {
		names := make([]string, 0, len(secrets))
		for name := range secrets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			setting := c.SettingByName(name)
			if setting == nil {
				return fmt.Errorf("%w: %s", ErrSettingNotFound, name)
			}
			nested, _ := secrets[name].(map[string]any)
			if err := setting.UpdateSecrets(nested); err != nil {
				return err
			}
		}
	}

	c.emitSecretsUpdated(settingName)
	return nil
}

// ClearSecrets removes every secret from every setting, so secret data is
// not kept in memory longer than needed. A "secrets cleared" notification
// is dispatched unconditionally, even when nothing was present to clear.
func (c *Connection) ClearSecrets() {
	c.clearSecrets(nil)
}

// ClearSecretsWithFilter removes the secrets the filter approves. The
// notification fires unconditionally, as with ClearSecrets.
func (c *Connection) ClearSecretsWithFilter(filter SecretFilter) {
	c.clearSecrets(filter)
}

func (c *Connection) clearSecrets(filter SecretFilter) {
	for _, s := range c.settings {
		s.ClearSecrets(filter)
	}
	c.emitSecretsCleared()
}
