package frontmatter

import (
	"strings"

	"github.com/inful/mdfp"
)

// Fields excluded from the canonical fingerprint: they change without the
// rendered content changing.
var fingerprintExcluded = map[string]struct{}{
	mdfp.FingerprintField: {},
	"uid":                 {},
	"lastmod":             {},
}

// ComputeFingerprint computes the canonical content fingerprint for a page:
// sorted YAML frontmatter (minus volatile fields) plus the body. Two renders
// of the same page always fingerprint identically, which lets the driver
// skip rewriting files whose content is unchanged.
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, excluded := fingerprintExcluded[k]; excluded {
			continue
		}
		forHash[k] = v
	}

	serialized := ""
	if len(forHash) > 0 {
		raw, err := SerializeYAML(forHash)
		if err != nil {
			return "", err
		}
		serialized = strings.TrimSuffix(string(raw), "\n")
	}

	return mdfp.CalculateFingerprintFromParts(serialized, string(body)), nil
}

// UpsertFingerprint computes the fingerprint and stores it in fields.
// Returns the fingerprint and whether the stored value changed.
func UpsertFingerprint(fields map[string]any, body []byte) (string, bool, error) {
	fp, err := ComputeFingerprint(fields, body)
	if err != nil {
		return "", false, err
	}
	if existing, ok := fields[mdfp.FingerprintField].(string); ok && existing == fp {
		return fp, false, nil
	}
	fields[mdfp.FingerprintField] = fp
	return fp, true, nil
}
