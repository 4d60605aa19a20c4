// Package datagen produces synthetic movie datasets for manual testing.
package datagen

// Config holds configuration for dataset generation.
type Config struct {
	Rows       int    // Number of movie rows to generate
	YearMin    int    // Earliest release year
	YearMax    int    // Latest release year
	Seed       int64  // RNG seed; fixed seed means reproducible output
	OutputFile string // Destination path; .xlsx writes a workbook, anything else CSV
	Sheet      string // Worksheet name for XLSX output
}
