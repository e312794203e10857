// Package csvscan splits ad-hoc claim CSV uploads into raw records.
//
// Upstream files are not RFC 4180: fields may be wrapped in double quotes to
// protect embedded commas, rows may be shorter than the header, and blank
// lines appear between records. The scanner here tokenizes with a simple
// quote toggle instead of encoding/csv so those inputs survive unchanged.
package csvscan

import (
	"strings"

	"github.com/gyeh/claimstats/internal/model"
)

// Row is one data row zipped against the header, tagged with its 1-based
// physical line number in the source document.
type Row struct {
	Line   int
	Fields model.RawClaim
}

// SplitLine tokenizes one CSV line. A double quote toggles quoted mode and is
// not copied into the field; a comma outside quoted mode ends the current
// field. Fields are trimmed of surrounding whitespace.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// Document tokenizes a whole CSV document. The first non-blank line is the
// header; every following non-blank line is split and zipped positionally
// against the header columns. A short row backfills missing trailing columns
// with the empty string; extra trailing fields beyond the header are dropped.
// Blank lines are skipped everywhere and do not produce rows.
func Document(text string) []Row {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}
	header := SplitLine(strings.TrimSpace(lines[headerIdx]))

	var rows []Row
	for i := headerIdx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		values := SplitLine(line)
		rec := make(model.RawClaim, len(header))
		for col, name := range header {
			if col < len(values) {
				rec[name] = values[col]
			} else {
				rec[name] = ""
			}
		}
		rows = append(rows, Row{Line: i + 1, Fields: rec})
	}
	return rows
}
