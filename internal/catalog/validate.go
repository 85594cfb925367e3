package catalog

import (
	"errors"
	"fmt"

	"inputmask/internal/common"
	"inputmask/internal/diagnostic"
	"inputmask/internal/match"
	"inputmask/mask"
)

// Validate checks names, patterns, and samples of every mask in the catalog.
func Validate(cf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if cf.Version != SchemaVersion {
		res.AddWarning("unsupported_version",
			fmt.Sprintf("catalog version %q is not %q, reading it as %q", cf.Version, SchemaVersion, SchemaVersion),
			"", "version")
	}

	seen := map[string]struct{}{}
	normalized := map[string]string{}

	for i := range cf.Masks {
		m := &cf.Masks[i]

		name := m.Name
		if name == "" {
			res.AddError("empty_name", fmt.Sprintf("mask #%d has no name", i+1), "", fmt.Sprintf("masks[%d]", i))
			name = fmt.Sprintf("masks[%d]", i)
		} else if _, ok := seen[name]; ok {
			res.AddError("duplicate_mask", fmt.Sprintf("duplicate mask %q", name), name, "name")
			continue
		}

		seen[name] = struct{}{}

		if m.Name != "" {
			key := match.NormalizeName(m.Name)
			if earlier, ok := normalized[key]; ok {
				res.AddWarning("ambiguous_name",
					fmt.Sprintf("mask %q differs from %q only in case or separators", m.Name, earlier),
					m.Name, "name", earlier)
			} else {
				normalized[key] = m.Name
			}
		}

		res.Merge(validateMask(name, m))
	}

	return res
}

func validateMask(name string, m *Mask) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if m.Pattern == "" {
		res.AddError("empty_pattern", "pattern is empty", name, "pattern")
		return res
	}

	p, err := mask.Compile(m.Pattern)
	if err != nil {
		var malformed *mask.MalformedPatternError
		if errors.As(err, &malformed) {
			res.AddError("malformed_pattern",
				fmt.Sprintf("%s at position %d", malformed.Reason, malformed.Position), name, "pattern")
		} else {
			res.AddError("malformed_pattern", err.Error(), name, "pattern")
		}

		return res
	}

	if common.IsEmpty(m.Samples) {
		res.AddInfo("no_samples", "mask has no samples", name, "samples")
		return res
	}

	for i, s := range m.Samples {
		if got := p.Apply(s.Input); got != s.Want {
			res.AddError("sample_mismatch",
				fmt.Sprintf("input %q renders %q, want %q", s.Input, got, s.Want),
				name, fmt.Sprintf("samples[%d]", i))
		}
	}

	return res
}
