// Package catalog loads, validates, and compiles YAML catalogs of named masks.
//
// A catalog lets an application keep its masks next to examples of what they
// produce, and refer to them by name instead of repeating pattern strings.
//
// # Schema Overview
//
//	version: "1"
//	masks:
//	  - name: us_phone
//	    pattern: "(###) ###-####"
//	    description: US phone number
//	    samples:
//	      - input: "5551234567"
//	        want: "(555) 123-4567"
//	  - name: plate
//	    pattern: "UU-##-??"
//	    # samples may also be written as an input: want mapping
//	    samples:
//	      ab12cd: AB-12-cd
//
// # Validation
//
// Validate reports, as diagnostics:
//   - masks without a name, duplicated names, and empty patterns
//   - patterns that do not compile
//   - samples whose rendering differs from the expected text
//   - unsupported schema versions (warning) and masks without samples (info)
//
// Compile turns a valid catalog into a Registry of compiled patterns.
// Lookups of unknown names suggest the closest known names.
package catalog
