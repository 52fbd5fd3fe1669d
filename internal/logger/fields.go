package logger

// Standard field names for structured log entries.
const (
	FieldText     = "text"
	FieldFamily   = "family"
	FieldRow      = "row"
	FieldColumn   = "column"
	FieldFile     = "file"
	FieldOutput   = "output"
	FieldAccuracy = "accuracy"
	FieldReason   = "reason"
	FieldError    = "error"
	FieldCount    = "count"
)
