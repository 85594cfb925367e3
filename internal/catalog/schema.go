package catalog

// SchemaVersion is the only catalog version this package understands.
const SchemaVersion = "1"

// File represents the root of a YAML mask catalog.
type File struct {
	// Version of the catalog schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Masks is the list of named masks.
	Masks []Mask `yaml:"masks"`
}

// Mask is a named mask pattern.
type Mask struct {
	// Name identifies the mask in lookups. Must be unique in the file.
	Name string `yaml:"name"`

	// Pattern is the mask source, e.g. "(###) ###-####".
	Pattern string `yaml:"pattern"`

	// Description is free text. Defaults to the pattern.
	Description string `yaml:"description,omitempty"`

	// Samples are inputs with the text the mask must render for them.
	Samples SampleList `yaml:"samples,omitempty"`
}

// Sample pairs an input with its expected rendering.
type Sample struct {
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

// SampleList is a list of samples that may be written in YAML either as a
// sequence of {input, want} entries or as an input: want mapping.
type SampleList []Sample
