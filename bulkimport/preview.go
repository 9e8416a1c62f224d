package bulkimport

// previewSize is how many rows each preview window shows.
const previewSize = 5

// Preview returns the first-five or last-five row window for display.
// Validation always walks every row regardless of this window.
func Preview(rows []Row, lastFive bool) []Row {
	if len(rows) <= previewSize {
		return rows
	}
	if lastFive {
		return rows[len(rows)-previewSize:]
	}
	return rows[:previewSize]
}
