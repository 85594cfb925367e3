// Package mask re-renders free-form text so that it conforms to an input mask
// such as "(###) ###-####" or "UU-##-??".
//
// A mask is a sequence of slots:
//   - type slots accept one input character of a class and may fold its case:
//     '#' digit, 'U' letter (upper-cased), 'L' letter (lower-cased),
//     'A' letter or digit, '?' letter, '*' anything, 'H' hexadecimal digit;
//   - literal slots are written verbatim;
//   - an apostrophe escapes the next mask character, turning it into a literal
//     slot even if it is a type character ("'U##" renders as "U12").
//
// # Applying a mask
//
// Apply always reformats from the start of the text in a single pass:
//
//	p := mask.MustCompile("(###) ###-####")
//	p.Apply("5551234567")     // "(555) 123-4567"
//	p.Apply("(555) 123-4567") // unchanged
//	p.Apply("55a")            // "(55", 'a' is not a digit
//
// Literals are inserted without consuming input, so users can type through
// separators or skip them. A separator the user typed as the last character is
// dropped until the next character arrives; an escaped literal is always
// written. A character that does not fit its
// slot ends the output. Text longer than the mask capacity is cut to capacity
// and returned as is.
//
// A compiled Pattern is immutable and safe for concurrent use.
package mask
