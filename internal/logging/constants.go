package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter.
const (
	FieldFile       = "file"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldPage       = "page"
	FieldPages      = "pages"
	FieldCount      = "count"
	FieldDuration   = "duration_ms"
	FieldStatus     = "status"
	FieldFormat     = "format"
	FieldLanguage   = "language"
	FieldWorkers    = "workers"
	FieldHeadings   = "headings"
	FieldTitle      = "title"
)
