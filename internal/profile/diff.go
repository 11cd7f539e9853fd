package profile

// Diff compares two connections and collects per-property differences.
// It returns true with a nil result when the connections are equal under
// flags. b may be nil, in which case every property of a is reported as
// present only in a.
//
// The scan runs twice: forward over a's settings, then (if b is non-nil)
// reverse over b's settings with inverted flags, so properties present
// only in b surface as additions rather than removals. Results for the
// same kind from both directions merge into one entry.
func Diff(a, b *Connection, flags CompareFlags) (bool, DiffResult) {
	if a == b {
		return true, nil
	}
	if a == nil {
		return b == nil, nil
	}

	diffs := make(DiffResult)

	diffOneConnection(a, b, flags, false, diffs)
	if b != nil {
		diffOneConnection(b, a, flags, true, diffs)
	}

	if len(diffs) == 0 {
		return true, nil
	}
	return false, diffs
}

// diffOneConnection runs one directional scan, delegating per-setting diffs
// and accumulating into diffs keyed by kind name. A kind entry is only kept
// when the setting reports a real difference.
func diffOneConnection(a, b *Connection, flags CompareFlags, invert bool, diffs DiffResult) {
	for _, aSetting := range a.allSettings() {
		var bSetting Setting
		if b != nil {
			bSetting = b.Setting(aSetting.Name())
		}

		name := aSetting.Name()
		results, existed := diffs[name]
		if !existed {
			results = make(PropertyDiffs)
		}

		if !aSetting.Diff(bSetting, flags, invert, results) && !existed {
			diffs[name] = results
		}
	}
}
