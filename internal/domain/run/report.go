package run

import "github.com/rigup/rigup/internal/domain/step"

// Entry is one warning or error attributed to a step.
type Entry struct {
	StepID  step.ID
	Message string
}

// Report accumulates what happened over one run: the steps attempted in
// order, plus every warning and error. It is owned by the Runner for the
// duration of a run and never reset mid-run.
type Report struct {
	attempted []step.ID
	warnings  []Entry
	errors    []Entry
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		attempted: make([]step.ID, 0),
		warnings:  make([]Entry, 0),
		errors:    make([]Entry, 0),
	}
}

// RecordAttempt appends a step to the ordered attempt list.
func (r *Report) RecordAttempt(id step.ID) {
	r.attempted = append(r.attempted, id)
}

// AddWarning appends a warning entry.
func (r *Report) AddWarning(id step.ID, message string) {
	r.warnings = append(r.warnings, Entry{StepID: id, Message: message})
}

// AddError appends an error entry.
func (r *Report) AddError(id step.ID, message string) {
	r.errors = append(r.errors, Entry{StepID: id, Message: message})
}

// Attempted returns the ordered list of attempted step IDs.
func (r *Report) Attempted() []step.ID {
	return r.attempted
}

// Warnings returns the accumulated warnings in order.
func (r *Report) Warnings() []Entry {
	return r.warnings
}

// Errors returns the accumulated errors in order.
func (r *Report) Errors() []Entry {
	return r.errors
}

// HasErrors reports whether any step failed.
func (r *Report) HasErrors() bool {
	return len(r.errors) > 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *Report) HasWarnings() bool {
	return len(r.warnings) > 0
}
