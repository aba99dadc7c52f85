package step

// Severity classifies how a step failure is recorded in the run report.
// Required failures become errors; optional failures become warnings.
// Neither stops the run.
type Severity string

const (
	// SeverityRequired marks a step whose failure is an error.
	SeverityRequired Severity = "required"
	// SeverityOptional marks a nice-to-have step whose failure is only
	// worth a warning.
	SeverityOptional Severity = "optional"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}
