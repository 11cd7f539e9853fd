package profile

import (
	"errors"
	"strings"
	"testing"
)

func TestConnection_AddRemoveSetting(t *testing.T) {
	c := New()
	if c.SettingCount() != 0 {
		t.Fatalf("new connection should be empty, got %d settings", c.SettingCount())
	}

	s := newFakeSetting(fakeBaseKind)
	c.AddSetting(s)
	if c.SettingCount() != 1 {
		t.Fatalf("SettingCount() = %d, want 1", c.SettingCount())
	}
	if c.Setting(fakeBaseKind) != Setting(s) {
		t.Error("Setting() should return the added instance")
	}

	// Same kind replaces, it does not accumulate.
	replacement := newFakeSetting(fakeBaseKind)
	c.AddSetting(replacement)
	if c.SettingCount() != 1 {
		t.Errorf("SettingCount() after replace = %d, want 1", c.SettingCount())
	}
	if c.Setting(fakeBaseKind) != Setting(replacement) {
		t.Error("AddSetting() should replace the prior same-kind setting")
	}

	c.AddSetting(nil)
	if c.SettingCount() != 1 {
		t.Error("AddSetting(nil) should be a no-op")
	}

	c.RemoveSetting(fakeBaseKind)
	if c.Setting(fakeBaseKind) != nil {
		t.Error("RemoveSetting() should discard the setting")
	}
	c.RemoveSetting("test-never-registered") // no-op
}

func TestConnection_SettingByName_RequiresRegistration(t *testing.T) {
	c := New()
	c.AddSetting(newFakeSetting("test-unregistered-kind"))

	if c.Setting("test-unregistered-kind") == nil {
		t.Fatal("Setting() should return held settings regardless of registration")
	}
	if c.SettingByName("test-unregistered-kind") != nil {
		t.Error("SettingByName() should treat unregistered names as absent")
	}
	if c.SettingByName(fakeBaseKind) != nil {
		t.Error("SettingByName() should return nil for registered but absent kind")
	}
}

func TestConnection_SettingNames_Sorted(t *testing.T) {
	c := New()
	c.AddSetting(newFakeSetting(fakeIPKind))
	c.AddSetting(newFakeSetting(fakeBaseKind))
	c.AddSetting(fakeConnectionSetting(fakeBaseKind))

	names := c.SettingNames()
	want := []string{ConnectionSettingName, fakeBaseKind, fakeIPKind}
	if len(names) != len(want) {
		t.Fatalf("SettingNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("SettingNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestReplaceSettings_Valid(t *testing.T) {
	c := New()
	c.AddSetting(newFakeSetting(fakeAuxKind))

	err := c.ReplaceSettings(map[string]map[string]any{
		ConnectionSettingName: {"id": "replaced", TypeProperty: fakeBaseKind},
		fakeBaseKind:          {"mtu": 1500},
	})
	if err != nil {
		t.Fatalf("ReplaceSettings() error = %v", err)
	}

	if c.Setting(fakeAuxKind) != nil {
		t.Error("prior settings should be cleared by replace")
	}
	if c.Setting(fakeBaseKind) == nil {
		t.Error("new base setting should be present")
	}
}

func TestReplaceSettings_BadPermissionsLeavesConnectionUntouched(t *testing.T) {
	c := validFakeConnection()

	err := c.ReplaceSettings(map[string]map[string]any{
		ConnectionSettingName: {
			TypeProperty:        fakeBaseKind,
			PermissionsProperty: "not-a-list",
		},
		fakeBaseKind: {},
	})
	if !errors.Is(err, ErrPropertyTypeMismatch) {
		t.Fatalf("error = %v, want ErrPropertyTypeMismatch", err)
	}

	// The type check runs before any mutation.
	if c.SettingCount() != 2 {
		t.Errorf("SettingCount() = %d, want untouched 2", c.SettingCount())
	}
}

func TestReplaceSettings_PermissionsTypes(t *testing.T) {
	tests := []struct {
		name    string
		perms   any
		wantErr bool
	}{
		{"string slice", []string{"user:alice"}, false},
		{"any slice of strings", []any{"user:alice", "user:bob"}, false},
		{"any slice with non-string", []any{"user:alice", 7}, true},
		{"scalar", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.ReplaceSettings(map[string]map[string]any{
				ConnectionSettingName: {
					TypeProperty:        fakeBaseKind,
					PermissionsProperty: tt.perms,
				},
				fakeBaseKind: {},
			})
			if tt.wantErr && !errors.Is(err, ErrPropertyTypeMismatch) {
				t.Errorf("error = %v, want ErrPropertyTypeMismatch", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReplaceSettings_FailedVerifyIsNotRolledBack(t *testing.T) {
	c := validFakeConnection()

	// Base type names a kind the replacement does not contain.
	err := c.ReplaceSettings(map[string]map[string]any{
		ConnectionSettingName: {TypeProperty: fakeBaseKind},
	})
	if !errors.Is(err, ErrConnectionTypeInvalid) {
		t.Fatalf("error = %v, want ErrConnectionTypeInvalid", err)
	}

	// The invalid replacement set stays in place; the prior contents are gone.
	if c.SettingCount() != 1 {
		t.Errorf("SettingCount() = %d, want the replacement's 1", c.SettingCount())
	}
	if c.Setting(fakeBaseKind) != nil {
		t.Error("prior base setting should not be restored after failed replace")
	}
}

func TestReplaceSettings_SkipsUnknownKinds(t *testing.T) {
	c := New()
	err := c.ReplaceSettings(map[string]map[string]any{
		ConnectionSettingName:     {TypeProperty: fakeBaseKind},
		fakeBaseKind:              {},
		"test-future-setting-kind": {"some-prop": true},
	})
	if err != nil {
		t.Fatalf("ReplaceSettings() error = %v", err)
	}
	if c.SettingCount() != 2 {
		t.Errorf("SettingCount() = %d, want 2 (unknown kind skipped)", c.SettingCount())
	}
}

func TestConnection_Duplicate(t *testing.T) {
	c := validFakeConnection()
	c.SetPath("/profiles/1")
	base := c.Setting(fakeBaseKind).(*fakeSetting)
	base.props["mtu"] = 1500

	fired := false
	c.OnSecretsCleared(func() { fired = true })

	dup := c.Duplicate()

	if dup.Path() != "/profiles/1" {
		t.Errorf("Path() = %q, want copied path", dup.Path())
	}
	if dup.SettingCount() != c.SettingCount() {
		t.Errorf("SettingCount() = %d, want %d", dup.SettingCount(), c.SettingCount())
	}

	// Deep copy: mutating the duplicate must not touch the original.
	dupBase := dup.Setting(fakeBaseKind).(*fakeSetting)
	dupBase.props["mtu"] = 9000
	if base.props["mtu"] != 1500 {
		t.Error("Duplicate() should not share setting state")
	}

	// Listeners are not carried over.
	dup.ClearSecrets()
	if fired {
		t.Error("duplicate should not inherit listeners")
	}
}

func TestConnection_IsType(t *testing.T) {
	c := validFakeConnection()
	if !c.IsType(fakeBaseKind) {
		t.Error("IsType() should match the type property")
	}
	if c.IsType(fakeAuxKind) {
		t.Error("IsType() should reject a non-matching kind")
	}

	empty := New()
	if empty.IsType(fakeBaseKind) {
		t.Error("IsType() should be false without a connection setting")
	}
}

func TestConnection_Dump(t *testing.T) {
	c := validFakeConnection()
	out := c.Dump()
	if !strings.Contains(out, "["+ConnectionSettingName+"]") {
		t.Errorf("Dump() missing connection section:\n%s", out)
	}
	if !strings.Contains(out, "type = "+fakeBaseKind) {
		t.Errorf("Dump() missing type property:\n%s", out)
	}
}
