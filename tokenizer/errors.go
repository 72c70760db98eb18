package tokenizer

import "log"

// ErrorCollector receives lexical error and warning reports as the
// tokenizer discovers them. Line and Column are zero-based. Reports
// arrive in source order; a single call to Next may produce several
// reports before (or alongside) the token whose consumption triggered
// them, as specified by the driver in tokenizer.go.
type ErrorCollector interface {
	AddError(line, column int, message string)
	AddWarning(line, column int, message string)
}

// Issue is one reported problem, as recorded by Collector.
type Issue struct {
	Line    int
	Column  int
	Message string
	Warning bool
}

// Collector is an in-memory ErrorCollector that simply accumulates
// Issues in source order. It is the queryable analogue of the
// original's "a typical implementation might simply print the errors
// to stdout" reference behavior.
type Collector struct {
	Issues []Issue
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AddError(line, column int, message string) {
	c.Issues = append(c.Issues, Issue{Line: line, Column: column, Message: message})
}

func (c *Collector) AddWarning(line, column int, message string) {
	c.Issues = append(c.Issues, Issue{Line: line, Column: column, Message: message, Warning: true})
}

// HasErrors reports whether any non-warning Issue was recorded.
func (c *Collector) HasErrors() bool {
	for _, issue := range c.Issues {
		if !issue.Warning {
			return true
		}
	}
	return false
}

// logCollector prints reports through a standard library *log.Logger,
// the direct Go analogue of the original's "print to stdout" sink.
type logCollector struct {
	logger *log.Logger
}

// NewLogCollector returns an ErrorCollector that writes each report as
// one line through logger.
func NewLogCollector(logger *log.Logger) ErrorCollector {
	return &logCollector{logger: logger}
}

func (c *logCollector) AddError(line, column int, message string) {
	c.logger.Printf("%d:%d: error: %s", line+1, column+1, message)
}

func (c *logCollector) AddWarning(line, column int, message string) {
	c.logger.Printf("%d:%d: warning: %s", line+1, column+1, message)
}

// nopCollector discards every report.
type nopCollector struct{}

// NewNopCollector returns an ErrorCollector that discards all reports.
func NewNopCollector() ErrorCollector { return nopCollector{} }

func (nopCollector) AddError(line, column int, message string)   {}
func (nopCollector) AddWarning(line, column int, message string) {}
