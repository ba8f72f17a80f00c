package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

type field struct {
	name  string
	value any
}

// formatRows renders rows as indented JSON objects, keeping the driver's
// column order (marshaling a map would sort the keys).
func formatRows(rs *ResultSet) string {
	if len(rs.Rows) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range rs.Rows {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  {\n")
		for j, col := range rs.Columns {
			if j > 0 {
				b.WriteString(",\n")
			}
			b.WriteString("    ")
			writeJSONPair(&b, col, row[j])
		}
		b.WriteString("\n  }")
	}
	b.WriteString("\n]")
	return b.String()
}

// formatFields renders an ordered field list as one indented JSON object.
func formatFields(fields []field) string {
	var b strings.Builder
	b.WriteString("{\n")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  ")
		writeJSONPair(&b, f.name, f.value)
	}
	b.WriteString("\n}")
	return b.String()
}

func writeJSONPair(b *strings.Builder, name string, value any) {
	key, _ := json.Marshal(name)
	val, err := json.Marshal(value)
	if err != nil {
		// Driver types that don't marshal fall back to their string form.
		val, _ = json.Marshal(fmt.Sprint(value))
	}
	b.Write(key)
	b.WriteString(": ")
	b.Write(val)
}
