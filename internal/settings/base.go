package settings

import (
	"fmt"
	"strings"

	"github.com/calebmv/netweave-core/internal/profile"
)

// propSpec describes one property of a setting kind: its serialized name,
// value type, and whether it is a secret. The schema drives the generic
// capability implementations (compare, diff, serialize, secrets,
// duplicate) so each kind only adds verification and discovery logic.
type propSpec struct {
	name   string
	typ    propType
	secret bool

	// isID marks the connection kind's id property, the only property
	// CompareIgnoreID applies to.
	isID bool
}

// secretFlagsSuffix names the companion property carrying a secret's
// storage flags, e.g. "psk" → "psk-flags".
const secretFlagsSuffix = "-flags"

// base is the schema-driven core shared by every setting kind. Kinds
// embed it and shadow Verify, NeedSecrets, or the secrets methods where
// the generic behaviour is not enough.
type base struct {
	name   string
	schema []propSpec

	// props holds only the properties that are set. Absent means unset;
	// there are no defaults at this layer.
	props map[string]any
}

// propCarrier exposes a setting's raw property map to same-package
// counterparts during comparison and diffing.
type propCarrier interface {
	propValues() map[string]any
}

// newBase builds a base from a serialized property map, coercing each
// known property to its schema type. Unknown properties are skipped, which
// keeps parsing lenient toward maps written by newer daemons. A known
// property with an incompatible value fails construction.
func newBase(name string, schema []propSpec, props map[string]any) (base, error) {
	b := base{
		name:   name,
		schema: schema,
		props:  make(map[string]any, len(props)),
	}
	for i := range schema {
		spec := &schema[i]
		raw, ok := props[spec.name]
		if !ok {
			continue
		}
		v, err := coerceValue(spec.typ, raw)
		if err != nil {
			return base{}, fmt.Errorf("%w: %s.%s: %v", ErrInvalidProperty, name, spec.name, err)
		}
		b.props[spec.name] = v
	}
	return b, nil
}

// clone returns a deep copy of the base.
func (b *base) clone() base {
	cpy := base{
		name:   b.name,
		schema: b.schema,
		props:  make(map[string]any, len(b.props)),
	}
	for k, v := range b.props {
		cpy.props[k] = deepCopyValue(v)
	}
	return cpy
}

// Name returns the registered kind name.
func (b *base) Name() string {
	return b.name
}

func (b *base) propValues() map[string]any {
	return b.props
}

func (b *base) specFor(name string) *propSpec {
	for i := range b.schema {
		if b.schema[i].name == name {
			return &b.schema[i]
		}
	}
	return nil
}

// set coerces and stores a property value. Unknown names are rejected.
func (b *base) set(name string, value any) error {
	spec := b.specFor(name)
	if spec == nil {
		return fmt.Errorf("%w: %s.%s: unknown property", ErrInvalidProperty, b.name, name)
	}
	v, err := coerceValue(spec.typ, value)
	if err != nil {
		return fmt.Errorf("%w: %s.%s: %v", ErrInvalidProperty, b.name, name, err)
	}
	b.props[name] = v
	return nil
}

func (b *base) has(name string) bool {
	_, ok := b.props[name]
	return ok
}

func (b *base) getString(name string) string {
	v, _ := b.props[name].(string)
	return v
}

func (b *base) getBool(name string) bool {
	v, _ := b.props[name].(bool)
	return v
}

func (b *base) getInt(name string) int64 {
	v, _ := b.props[name].(int64)
	return v
}

func (b *base) getStringList(name string) []string {
	v, _ := b.props[name].([]string)
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func (b *base) getStringMap(name string) map[string]string {
	v, _ := b.props[name].(map[string]string)
	if v == nil {
		return nil
	}
	out := make(map[string]string, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// secretPropFlags reads the "<name>-flags" companion for a secret.
// An absent companion means SecretFlagNone: the daemon owns the secret.
func (b *base) secretPropFlags(name string) profile.SecretFlags {
	return profile.SecretFlags(b.getInt(name + secretFlagsSuffix)) //nolint:gosec // flags fit in uint32
}

// skipProp reports whether comparison/diffing should ignore a property
// under flags. Agent-owned skipping consults the receiver's own flags
// companion.
func (b *base) skipProp(spec *propSpec, flags profile.CompareFlags) bool {
	if spec.isID && flags&profile.CompareIgnoreID != 0 {
		return true
	}
	if !spec.secret {
		return false
	}
	if flags&profile.CompareIgnoreSecrets != 0 {
		return true
	}
	if flags&profile.CompareIgnoreAgentOwnedSecrets != 0 &&
		b.secretPropFlags(spec.name)&profile.SecretFlagAgentOwned != 0 {
		return true
	}
	return false
}

// Compare reports property-for-property equality with a same-kind setting
// under flags. A nil or different-kind other never compares equal.
func (b *base) Compare(other profile.Setting, flags profile.CompareFlags) bool {
	if other == nil || other.Name() != b.name {
		return false
	}
	oc, ok := other.(propCarrier)
	if !ok {
		return false
	}
	op := oc.propValues()

	for i := range b.schema {
		spec := &b.schema[i]
		if b.skipProp(spec, flags) {
			continue
		}
		va, oka := b.props[spec.name]
		vb, okb := op[spec.name]
		if oka != okb {
			return false
		}
		if oka && !valueEqual(va, vb) {
			return false
		}
	}
	return true
}

// Diff records per-property differences against other into results and
// reports whether the settings are identical under flags. Flags for a
// property merge with whatever an earlier scan already recorded. invert
// swaps the InA/InB attribution for reverse-direction scans.
func (b *base) Diff(other profile.Setting, flags profile.CompareFlags, invert bool, results profile.PropertyDiffs) bool {
	var op map[string]any
	if oc, ok := other.(propCarrier); ok && other.Name() == b.name {
		op = oc.propValues()
	}

	same := true
	for i := range b.schema {
		spec := &b.schema[i]
		if b.skipProp(spec, flags) {
			continue
		}
		va, oka := b.props[spec.name]
		var vb any
		okb := false
		if op != nil {
			vb, okb = op[spec.name]
		}
		if oka == okb && (!oka || valueEqual(va, vb)) {
			continue
		}

		same = false
		var f profile.DiffFlags
		if oka {
			f |= profile.DiffInA
		}
		if okb {
			f |= profile.DiffInB
		}
		if invert {
			f = invertDiffFlags(f)
		}
		results[spec.name] |= f
	}
	return same
}

func invertDiffFlags(f profile.DiffFlags) profile.DiffFlags {
	var out profile.DiffFlags
	if f&profile.DiffInA != 0 {
		out |= profile.DiffInB
	}
	if f&profile.DiffInB != 0 {
		out |= profile.DiffInA
	}
	return out
}

// NeedSecrets reports no needed secrets; kinds with secrets shadow this.
func (b *base) NeedSecrets() []string {
	return nil
}

// Verify accepts everything; kinds with constraints shadow this.
func (b *base) Verify(_ []profile.Setting) error {
	return nil
}

// UpdateSecrets merges secret values into the setting. Unknown property
// names are skipped so a caller may pass a full serialized slice; flags
// companions ride along; a known non-secret property is an error.
func (b *base) UpdateSecrets(secrets map[string]any) error {
	for name, raw := range secrets {
		spec := b.specFor(name)
		if spec == nil {
			continue
		}
		if !spec.secret && !strings.HasSuffix(name, secretFlagsSuffix) {
			return fmt.Errorf("%w: %s.%s", ErrPropertyNotSecret, b.name, name)
		}
		v, err := coerceValue(spec.typ, raw)
		if err != nil {
			return fmt.Errorf("%w: %s.%s: %v", ErrInvalidProperty, b.name, name, err)
		}
		b.props[name] = v
	}
	return nil
}

// ClearSecrets removes secret values. A nil filter clears all of them;
// otherwise each secret is offered to the filter with its storage flags.
// Flags companions are ordinary properties and stay behind.
func (b *base) ClearSecrets(filter profile.SecretFilter) {
	for i := range b.schema {
		spec := &b.schema[i]
		if !spec.secret {
			continue
		}
		if filter != nil && !filter(b.name, spec.name, b.secretPropFlags(spec.name)) {
			continue
		}
		delete(b.props, spec.name)
	}
}

// ToMap serializes the set properties selected by flags. Values are deep
// copies; mutating the result never touches the setting.
func (b *base) ToMap(flags profile.SerializeFlags) map[string]any {
	out := make(map[string]any, len(b.props))
	for i := range b.schema {
		spec := &b.schema[i]
		v, ok := b.props[spec.name]
		if !ok {
			continue
		}
		if spec.secret {
			if flags&profile.SerializeNoSecrets != 0 {
				continue
			}
		} else if flags&profile.SerializeOnlySecrets != 0 {
			continue
		}
		out[spec.name] = deepCopyValue(v)
	}
	return out
}
