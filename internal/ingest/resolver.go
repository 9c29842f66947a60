package ingest

import "strings"

var nameNormalizer = strings.NewReplacer("_", "", "-", "", " ", "", "\t", "")

// normalizeName folds a header or alias for matching: lower-case with
// underscores, hyphens and whitespace removed.
func normalizeName(name string) string {
	return nameNormalizer.Replace(strings.ToLower(name))
}

// resolveColumn walks aliases in priority order and returns the value of
// the first column whose normalized header equals the normalized alias
// and whose cell is populated. An empty-string cell means "column
// present but unset": that alias is skipped, not matched.
func resolveColumn(row Row, aliases []string) (Value, error) {
	for _, alias := range aliases {
		want := normalizeName(alias)
		for _, cell := range row {
			if normalizeName(cell.Column) != want {
				continue
			}
			if !cell.Value.IsEmpty() {
				return cell.Value, nil
			}
			// Only the first header matching this alias counts.
			break
		}
	}
	return Value{}, &MissingColumnError{Aliases: aliases}
}
