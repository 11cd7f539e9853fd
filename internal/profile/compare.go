package profile

// Compare reports whether two connections hold equal settings under flags.
// Two nil connections are equal; one nil and one non-nil are not.
//
// Every setting in a must have a same-kind counterpart in b that compares
// equal, and the total setting counts must match. The count check stands in
// for a reverse membership scan: it misses the theoretical case where b
// swaps one kind for another of equal count. That weak point is inherited
// deliberately; do not strengthen it without reviewing every caller's
// expectations.
func Compare(a, b *Connection, flags CompareFlags) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	for name, src := range a.settings {
		cmp := b.Setting(name)
		if cmp == nil || !src.Compare(cmp, flags) {
			return false
		}
	}

	return len(a.settings) == len(b.settings)
}
