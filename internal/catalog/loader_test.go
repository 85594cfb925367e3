package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	cf, err := LoadFile(filepath.Join("testdata", "masks.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", cf.Version)
	require.Len(t, cf.Masks, 5)

	phone := cf.Masks[0]
	assert.Equal(t, "us_phone", phone.Name)
	assert.Equal(t, "(###) ###-####", phone.Pattern)
	assert.Equal(t, "US phone number", phone.Description)
	require.Len(t, phone.Samples, 3)
	assert.Equal(t, Sample{Input: "5551234567", Want: "(555) 123-4567"}, phone.Samples[0])

	// mapping form keeps file order
	plate := cf.Masks[1]
	assert.Equal(t, SampleList{{Input: "ab12cd", Want: "AB-12-cd"}, {Input: "ab", Want: "AB"}}, plate.Samples)

	// description defaults to the pattern
	assert.Equal(t, "UU-##-??", plate.Description)

	assert.Empty(t, cf.Masks[3].Samples)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestParseMinimal(t *testing.T) {
	t.Parallel()

	yaml := `
masks:
  - name: pin
    pattern: "####"
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", cf.Version) // Default version
	require.Len(t, cf.Masks, 1)
	assert.Equal(t, "pin", cf.Masks[0].Name)
	assert.Equal(t, "####", cf.Masks[0].Description)
}

func TestParseSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		expected SampleList
		errText  string
	}{
		{
			name: "sequence",
			yaml: `
masks:
  - name: pin
    pattern: "##"
    samples:
      - input: "12"
        want: "12"
      - input: "1a"
        want: "1"
`,
			expected: SampleList{{Input: "12", Want: "12"}, {Input: "1a", Want: "1"}},
		},
		{
			name: "mapping",
			yaml: `
masks:
  - name: pin
    pattern: "##"
    samples:
      "12": "12"
      "1a": "1"
`,
			expected: SampleList{{Input: "12", Want: "12"}, {Input: "1a", Want: "1"}},
		},
		{
			name: "empty mapping",
			yaml: `
masks:
  - name: pin
    pattern: "##"
    samples: {}
`,
			expected: SampleList{},
		},
		{
			name: "scalar",
			yaml: `
masks:
  - name: pin
    pattern: "##"
    samples: "12"
`,
			errText: "expected samples sequence or mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cf, err := Parse([]byte(tt.yaml))
			if tt.errText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)

				return
			}

			require.NoError(t, err)
			require.Len(t, cf.Masks, 1)
			assert.Equal(t, tt.expected, cf.Masks[0].Samples)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("masks: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog YAML")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	cf := &File{
		Version: "1",
		Masks: []Mask{
			{
				Name:        "plate",
				Pattern:     "UU-##-??",
				Description: "plate",
				Samples:     SampleList{{Input: "ab12cd", Want: "AB-12-cd"}},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(cf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cf, loaded)

	data, err := Marshal(cf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- input: ab12cd")
}
