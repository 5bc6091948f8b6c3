package repository

import "strings"

// buildSet renders the SET clause of a partial UPDATE from a column→value
// map. Columns are emitted in the order given so the statement is stable
// across runs (maps iterate randomly). Columns absent from the map are
// skipped. Returns the clause without the leading "SET " and the matching
// argument slice; both are empty when nothing is to be updated.
func buildSet(cols map[string]any, order []string) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(cols))
	for _, col := range order {
		v, ok := cols[col]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString(" = ?")
		args = append(args, v)
	}
	return b.String(), args
}
