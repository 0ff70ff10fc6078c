package sheets

import (
	"fmt"
	"strings"
)

// columnName converts a 1-based column index into its A1 letters (1 -> A, 27 -> AA).
func columnName(col int) string {
	var name []byte
	for col > 0 {
		col--
		name = append([]byte{byte('A' + col%26)}, name...)
		col /= 26
	}
	return string(name)
}

// quoteTitle quotes a sheet title for use in an A1 range.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// cellRange returns the A1 notation of a single cell.
func cellRange(title string, row, col int) string {
	return fmt.Sprintf("%s!%s%d", quoteTitle(title), columnName(col), row)
}
