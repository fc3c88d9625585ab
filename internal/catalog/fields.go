package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field identifies a logical catalog column.
type Field string

const (
	FieldName        Field = "name"
	FieldFamily      Field = "family"
	FieldMunsell     Field = "munsell"
	FieldPCCS        Field = "pccs"
	FieldRGB         Field = "rgb"
	FieldDescription Field = "description"
)

// AllFields lists every logical field in display order.
var AllFields = []Field{
	FieldName,
	FieldFamily,
	FieldMunsell,
	FieldPCCS,
	FieldRGB,
	FieldDescription,
}

// Valid reports whether f is one of AllFields.
func (f Field) Valid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// Aliases maps each logical field to the header names tried, in order,
// when reading a row.
type Aliases map[Field][]string

// DefaultAliases returns the built-in header alias table.
func DefaultAliases() Aliases {
	return Aliases{
		FieldName:        {"色名", "name", "Name", "色の名前"},
		FieldFamily:      {"系統色名", "系統", "family"},
		FieldMunsell:     {"マンセル値", "マンセル", "Munsell"},
		FieldPCCS:        {"pccs", "PCCS", "PCCSトーン", "PCCS tone", "トーン"},
		FieldRGB:         {"RGB", "rgb", "カラーコード", "color", "Color"},
		FieldDescription: {"説明", "解説", "description", "Description", "由来"},
	}
}

// Merge returns a copy of a where every field present in override
// replaces the default list.
func (a Aliases) Merge(override Aliases) Aliases {
	out := make(Aliases, len(a))
	for f, names := range a {
		out[f] = append([]string(nil), names...)
	}
	for f, names := range override {
		if len(names) > 0 {
			out[f] = append([]string(nil), names...)
		}
	}
	return out
}

// Row is one source row keyed by normalized header name. A header that is
// absent from the row (ragged CSV line, NULL column) has no key.
type Row map[string]string

// Lookup returns the value of the first alias present in the row, or ""
// when none match. A present-but-empty cell still wins.
func (a Aliases) Lookup(row Row, f Field) string {
	for _, k := range a[f] {
		if v, ok := row[NormalizeHeader(k)]; ok {
			return v
		}
	}
	return ""
}

// NormalizeHeader folds a header cell for alias matching: BOM stripped,
// NFKC applied, surrounding whitespace trimmed.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(norm.NFKC.String(h))
}
