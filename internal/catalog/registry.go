package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"inputmask/internal/common"
	"inputmask/internal/diagnostic"
	"inputmask/internal/match"
	"inputmask/mask"
)

// ErrUnknownMask is returned by Lookup for names not in the registry.
var ErrUnknownMask = errors.New("unknown mask")

// maxSuggestions bounds the "did you mean" list of a failed lookup.
const maxSuggestions = 3

// Registry holds the compiled masks of a catalog by name.
// It is read-only once built and safe for concurrent use.
type Registry struct {
	patterns     map[string]*mask.Pattern
	descriptions map[string]string
}

// Compile validates the catalog and compiles every mask.
// The registry is nil when validation reports errors.
func Compile(cf *File) (*Registry, *diagnostic.Diagnostics) {
	diags := Validate(cf)
	if diags.HasErrors() {
		return nil, diags
	}

	r := &Registry{
		patterns:     make(map[string]*mask.Pattern, len(cf.Masks)),
		descriptions: make(map[string]string, len(cf.Masks)),
	}

	for _, m := range cf.Masks {
		// validated above, cannot fail
		r.patterns[m.Name] = mask.MustCompile(m.Pattern)
		r.descriptions[m.Name] = m.Description
	}

	return r, diags
}

// Lookup returns the compiled mask registered under name.
func (r *Registry) Lookup(name string) (*mask.Pattern, error) {
	if p, ok := r.patterns[name]; ok {
		return p, nil
	}

	suggestions := r.Suggest(name)
	if best, ok := common.First(suggestions); ok {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownMask, name, best)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownMask, name)
}

// Suggest returns the registered names closest to name, best first.
func (r *Registry) Suggest(name string) []string {
	return match.Suggest(name, r.Names(), maxSuggestions)
}

// Description returns the description of a registered mask.
func (r *Registry) Description(name string) string {
	return r.descriptions[name]
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.patterns))
}

// Len returns the number of registered masks.
func (r *Registry) Len() int {
	return len(r.patterns)
}
