package settings

import (
	"errors"
	"strconv"
	"testing"

	"github.com/calebmv/netweave-core/internal/profile"
)

func mustVPN(t *testing.T, props map[string]any) *VPNSetting {
	t.Helper()
	s, err := NewVPNSetting(props)
	if err != nil {
		t.Fatalf("NewVPNSetting() error = %v", err)
	}
	return s
}

func TestVPNSetting_Verify(t *testing.T) {
	s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
	if err := s.Verify(nil); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	missing := mustVPN(t, nil)
	if err := missing.Verify(nil); !errors.Is(err, ErrMissingProperty) {
		t.Errorf("Verify() error = %v, want ErrMissingProperty", err)
	}
}

func TestVPNSetting_UpdateSecrets(t *testing.T) {
	t.Run("flat string values", func(t *testing.T) {
		s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
		err := s.UpdateSecrets(map[string]any{"password": "hunter2", "cert-pass": "x"})
		if err != nil {
			t.Fatalf("UpdateSecrets() error = %v", err)
		}
		got := s.Secrets()
		if got["password"] != "hunter2" || got["cert-pass"] != "x" {
			t.Errorf("Secrets() = %v", got)
		}
	})

	t.Run("nested secrets map flattened", func(t *testing.T) {
		s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
		err := s.UpdateSecrets(map[string]any{
			PropVPNSecrets: map[string]any{"password": "hunter2"},
		})
		if err != nil {
			t.Fatalf("UpdateSecrets() error = %v", err)
		}
		if s.Secrets()["password"] != "hunter2" {
			t.Errorf("Secrets() = %v", s.Secrets())
		}
		if _, ok := s.Secrets()[PropVPNSecrets]; ok {
			t.Error("the wrapper key must not become a secret")
		}
	})

	t.Run("merge keeps existing keys", func(t *testing.T) {
		s := mustVPN(t, map[string]any{
			PropVPNServiceType: "org.example.openvpn",
			PropVPNSecrets:     map[string]string{"password": "old"},
		})
		if err := s.UpdateSecrets(map[string]any{"otp": "123456"}); err != nil {
			t.Fatalf("UpdateSecrets() error = %v", err)
		}
		got := s.Secrets()
		if got["password"] != "old" || got["otp"] != "123456" {
			t.Errorf("Secrets() = %v, want merge", got)
		}
	})

	t.Run("non-string value rejected", func(t *testing.T) {
		s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
		err := s.UpdateSecrets(map[string]any{"password": 42})
		if !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("error = %v, want ErrInvalidProperty", err)
		}
	})

	t.Run("nested map under wrong key rejected", func(t *testing.T) {
		s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
		err := s.UpdateSecrets(map[string]any{"data": map[string]any{"k": "v"}})
		if !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("error = %v, want ErrInvalidProperty", err)
		}
	})
}

func TestVPNSetting_ClearSecrets(t *testing.T) {
	agentFlags := strconv.FormatUint(uint64(profile.SecretFlagAgentOwned), 10)
	s := mustVPN(t, map[string]any{
		PropVPNServiceType: "org.example.openvpn",
		PropVPNData: map[string]string{
			"remote":         "vpn.example.com",
			"password-flags": agentFlags,
		},
		PropVPNSecrets: map[string]string{
			"password":  "hunter2",
			"cert-pass": "x",
		},
	})

	// Only agent-owned entries pass the filter; flags come from the data
	// map's "<key>-flags" entries.
	s.ClearSecrets(func(settingName, propName string, flags profile.SecretFlags) bool {
		if settingName != VPNSettingName {
			t.Errorf("filter got setting %q", settingName)
		}
		return flags&profile.SecretFlagAgentOwned != 0
	})

	got := s.Secrets()
	if _, ok := got["password"]; ok {
		t.Error("agent-owned entry should be cleared")
	}
	if _, ok := got["cert-pass"]; !ok {
		t.Error("unflagged entry should survive")
	}

	// A nil filter clears the map entirely and drops the property.
	s.ClearSecrets(nil)
	if s.Secrets() != nil {
		t.Errorf("Secrets() = %v, want nil after full clear", s.Secrets())
	}
	m := s.ToMap(profile.SerializeAll)
	if _, ok := m[PropVPNSecrets]; ok {
		t.Error("an emptied secrets map should not serialize")
	}
}

func TestVPNSetting_NeedSecretsDefault(t *testing.T) {
	// The daemon cannot know which keys a plugin wants, so the generic
	// no-secrets answer stands.
	s := mustVPN(t, map[string]any{PropVPNServiceType: "org.example.openvpn"})
	if got := s.NeedSecrets(); got != nil {
		t.Errorf("NeedSecrets() = %v, want nil", got)
	}
}
