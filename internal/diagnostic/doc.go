// Package diagnostic provides structured errors, warnings, and notes
// produced while validating a mask catalog.
//
// Key capabilities:
//   - Malformed and duplicate mask reports
//   - Sample inputs whose rendering differs from the expected text
//   - Suggestions attached to a diagnostic
package diagnostic
