package extractor

import "strings"

// ParseLine tokenizes one CSV line into its field values without using the
// csv library. Fields may be quoted with `"`; a doubled quote inside a quoted
// field is an escaped literal quote; commas inside quotes belong to the field.
// An unterminated quote closes implicitly at end of line. Every input yields a
// field sequence, so there is no error return.
func ParseLine(line string) []string {
	fields := make([]string, 0, 8)

	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch char := runes[i]; char {
		case '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ',':
			if inQuotes {
				field.WriteRune(char)
			} else {
				fields = append(fields, field.String())
				field.Reset()
			}
		default:
			field.WriteRune(char)
		}
	}

	// The last field is always pushed, even when empty.
	return append(fields, field.String())
}
