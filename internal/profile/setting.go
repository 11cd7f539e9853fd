package profile

// CompareFlags modify the strictness of Compare and Diff.
type CompareFlags uint32

const (
	// CompareExact requires every property of every setting to match.
	CompareExact CompareFlags = 0

	// CompareIgnoreID ignores the connection setting's id property.
	CompareIgnoreID CompareFlags = 0x1

	// CompareIgnoreSecrets ignores all secret properties.
	CompareIgnoreSecrets CompareFlags = 0x2

	// CompareIgnoreAgentOwnedSecrets ignores secrets whose flags mark them
	// as stored by a secret agent rather than by the daemon.
	CompareIgnoreAgentOwnedSecrets CompareFlags = 0x4
)

// SerializeFlags select which properties ToMap emits.
type SerializeFlags uint32

const (
	// SerializeAll emits every property, secrets included.
	SerializeAll SerializeFlags = 0

	// SerializeNoSecrets omits secret properties.
	SerializeNoSecrets SerializeFlags = 0x1

	// SerializeOnlySecrets emits secret properties and nothing else.
	SerializeOnlySecrets SerializeFlags = 0x2
)

// DiffFlags describe, per property, which side of a diff carried the
// differing value.
type DiffFlags uint32

const (
	// DiffInA marks a property present (or different) in the first connection.
	DiffInA DiffFlags = 0x1

	// DiffInB marks a property present (or different) in the second connection.
	DiffInB DiffFlags = 0x2
)

// PropertyDiffs maps property names to their diff flags within one setting.
type PropertyDiffs map[string]DiffFlags

// DiffResult maps setting kind names to per-property diffs. A kind appears
// only if at least one of its properties differs.
type DiffResult map[string]PropertyDiffs

// SecretFlags describe how a single secret property is stored and handled.
// They mirror the "<property>-flags" companion properties carried by
// settings that hold secrets.
type SecretFlags uint32

const (
	// SecretFlagNone means the daemon stores and provides the secret itself.
	SecretFlagNone SecretFlags = 0

	// SecretFlagAgentOwned means a secret agent stores the secret; the
	// daemon never persists it.
	SecretFlagAgentOwned SecretFlags = 0x1

	// SecretFlagNotSaved means the secret is requested every time and
	// never stored.
	SecretFlagNotSaved SecretFlags = 0x2

	// SecretFlagNotRequired means the secret is not needed even where one
	// would normally be expected.
	SecretFlagNotRequired SecretFlags = 0x4
)

// SecretFilter decides whether a specific secret should be cleared.
// It receives the owning setting kind, the secret's property name, and the
// secret's flags.
type SecretFilter func(settingName, propName string, flags SecretFlags) bool

// Setting is the capability interface implemented by every setting kind.
// A Connection owns at most one instance per kind and drives all
// validation, comparison, secrets, and serialization through it.
//
// Implementations live in internal/settings; this package treats them as
// opaque beyond this contract.
type Setting interface {
	// Name returns the registered kind name (e.g. "802-3-ethernet").
	Name() string

	// Verify checks the setting's own properties. The complete set of
	// sibling settings from the owning connection is passed in so kinds
	// can validate cross-setting references.
	Verify(all []Setting) error

	// Compare reports whether this setting equals other under flags.
	Compare(other Setting, flags CompareFlags) bool

	// Diff records per-property differences against other into results,
	// merging with any flags already present, and reports whether the two
	// settings are identical under flags. A nil other means every emitted
	// property differs. When invert is true the InA/InB flags are swapped,
	// so a reverse-direction scan reports additions as additions.
	Diff(other Setting, flags CompareFlags, invert bool, results PropertyDiffs) bool

	// NeedSecrets returns the property names of secrets that are required
	// but missing, or nil if the setting needs no secrets right now. The
	// names are hints only; callers must treat them as a guide.
	NeedSecrets() []string

	// UpdateSecrets merges the given secret properties into the setting.
	UpdateSecrets(secrets map[string]any) error

	// ClearSecrets removes secret values. A nil filter clears everything;
	// otherwise only secrets the filter approves are cleared.
	ClearSecrets(filter SecretFilter)

	// ToMap converts the setting to its property map. An empty result map
	// means the setting serializes to nothing under flags.
	ToMap(flags SerializeFlags) map[string]any

	// Duplicate returns a deep copy sharing no state with the receiver.
	Duplicate() Setting
}

// Factory constructs a setting of one kind from its serialized property
// map. Factories are registered alongside the kind via RegisterKind.
type Factory func(props map[string]any) (Setting, error)

// Logger is the minimal logging interface used by this package.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}
