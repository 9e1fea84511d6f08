package flydent

import "strings"

// The ITU reference CSVs carry two quirks the standard csv package has no
// contract for: list-valued columns encoded as bracketed literals
// ("['T6', 'YA']") nested inside quoted fields, and headers that must be
// skipped per file rather than per reader. Decoding is kept explicit here
// so the loader's behavior is pinned by its own tests.

// splitCSVLine splits one CSV record into trimmed fields. Quoted fields
// may contain commas; a doubled quote inside a quoted field escapes to a
// literal quote.
func splitCSVLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ',':
			if inQuotes {
				field.WriteByte(c)
			} else {
				fields = append(fields, strings.TrimSpace(field.String()))
				field.Reset()
			}
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

// parseListLiteral decodes a bracketed list column ("['T6', 'YA']") into
// its elements. Elements may be single- or double-quoted; anything that is
// not bracketed decodes as empty.
func parseListLiteral(s string) []string {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return nil
	}

	parts := strings.Split(inner, ", ")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && (p[0] == '\'' && p[len(p)-1] == '\'' || p[0] == '"' && p[len(p)-1] == '"') {
			p = p[1 : len(p)-1]
		}
		items = append(items, p)
	}
	return items
}

// csvRecords splits raw CSV content into per-record field slices, skipping
// the header line and blank lines.
func csvRecords(data string) [][]string {
	var records [][]string
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, splitCSVLine(line))
	}
	return records
}
