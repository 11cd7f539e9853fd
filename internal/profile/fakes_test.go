package profile

// Test doubles shared by the package tests. A handful of fake kinds are
// registered with the process-wide registry so container behavior can be
// exercised without pulling in the real setting implementations.

const (
	fakeBaseKind = "test-base"
	fakeAuxKind  = "test-aux"
	fakeIPKind   = "test-ip"
)

func init() {
	RegisterKind(ConnectionSettingName, fakeFactory(ConnectionSettingName), 0, "fake-connection-domain")
	RegisterKind(fakeBaseKind, fakeFactory(fakeBaseKind), 1, "fake-base-domain")
	RegisterKind(fakeAuxKind, fakeFactory(fakeAuxKind), 2, "fake-aux-domain")
	RegisterKind(PPPoESettingName, fakeFactory(PPPoESettingName), 3, "fake-pppoe-domain")
	RegisterKind(fakeIPKind, fakeFactory(fakeIPKind), 4, "fake-ip-domain")
}

func fakeFactory(name string) Factory {
	return func(props map[string]any) (Setting, error) {
		s := newFakeSetting(name)
		for k, v := range props {
			s.props[k] = v
		}
		return s, nil
	}
}

// fakeSetting is a minimal Setting with controllable behavior. Properties
// live in props; secret values live in secrets and are reported missing by
// NeedSecrets while needed names remain unset.
type fakeSetting struct {
	name    string
	props   map[string]any
	secrets map[string]any

	needed    []string
	verifyErr error
	updateErr error

	clearCalls int
	lastFilter SecretFilter
}

func newFakeSetting(name string) *fakeSetting {
	return &fakeSetting{
		name:    name,
		props:   make(map[string]any),
		secrets: make(map[string]any),
	}
}

func (s *fakeSetting) Name() string { return s.name }

func (s *fakeSetting) Verify(all []Setting) error { return s.verifyErr }

func (s *fakeSetting) Compare(other Setting, flags CompareFlags) bool {
	o, ok := other.(*fakeSetting)
	if !ok || o.name != s.name {
		return false
	}
	return mapsEqual(s.visibleProps(flags), o.visibleProps(flags))
}

func (s *fakeSetting) Diff(other Setting, flags CompareFlags, invert bool, results PropertyDiffs) bool {
	self := DiffInA
	if invert {
		self = DiffInB
	}

	var otherProps map[string]any
	if o, ok := other.(*fakeSetting); ok {
		otherProps = o.visibleProps(flags)
	}

	same := true
	for k, v := range s.visibleProps(flags) {
		ov, present := otherProps[k]
		if !present || ov != v {
			results[k] |= self
			same = false
		}
	}
	return same && other != nil
}

func (s *fakeSetting) NeedSecrets() []string {
	if len(s.needed) == 0 {
		return nil
	}
	for _, name := range s.needed {
		if _, ok := s.secrets[name]; !ok {
			return s.needed
		}
	}
	return nil
}

func (s *fakeSetting) UpdateSecrets(secrets map[string]any) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for k, v := range secrets {
		s.secrets[k] = v
	}
	return nil
}

func (s *fakeSetting) ClearSecrets(filter SecretFilter) {
	s.clearCalls++
	s.lastFilter = filter
	for k := range s.secrets {
		if filter == nil || filter(s.name, k, SecretFlagNone) {
			delete(s.secrets, k)
		}
	}
}

func (s *fakeSetting) ToMap(flags SerializeFlags) map[string]any {
	out := make(map[string]any)
	if flags&SerializeOnlySecrets == 0 {
		for k, v := range s.props {
			out[k] = v
		}
	}
	if flags&SerializeNoSecrets == 0 {
		for k, v := range s.secrets {
			out[k] = v
		}
	}
	return out
}

func (s *fakeSetting) Duplicate() Setting {
	dup := newFakeSetting(s.name)
	for k, v := range s.props {
		dup.props[k] = v
	}
	for k, v := range s.secrets {
		dup.secrets[k] = v
	}
	dup.needed = append([]string(nil), s.needed...)
	dup.verifyErr = s.verifyErr
	dup.updateErr = s.updateErr
	return dup
}

// visibleProps folds props and secrets into one map, honoring the compare
// flags the same way a real setting would.
func (s *fakeSetting) visibleProps(flags CompareFlags) map[string]any {
	out := make(map[string]any)
	for k, v := range s.props {
		if flags&CompareIgnoreID != 0 && s.name == ConnectionSettingName && k == "id" {
			continue
		}
		out[k] = v
	}
	if flags&CompareIgnoreSecrets == 0 {
		for k, v := range s.secrets {
			out[k] = v
		}
	}
	return out
}

func mapsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// fakeConnectionSetting builds a connection-kind fake with the given type
// property, the shape most container tests need.
func fakeConnectionSetting(ctype string) *fakeSetting {
	s := newFakeSetting(ConnectionSettingName)
	s.props["id"] = "test profile"
	if ctype != "" {
		s.props[TypeProperty] = ctype
	}
	return s
}

// validFakeConnection builds a verifiable connection holding the
// connection kind plus one base setting.
func validFakeConnection() *Connection {
	c := New()
	c.AddSetting(fakeConnectionSetting(fakeBaseKind))
	c.AddSetting(newFakeSetting(fakeBaseKind))
	return c
}

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, msg)
}
