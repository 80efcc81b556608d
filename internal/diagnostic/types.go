package diagnostic

import (
	"errors"
	"strings"

	"csv-mapper/internal/common"

	"github.com/go-logr/logr"
)

// Diagnostics holds the problems found while analyzing record types, grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one problem with a record type or one of its fields.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Code     string // stable identifier, e.g. "unsupported-field"
	Message  string
	TypeName string // record type, if any
	// FieldPath is the Go field name, if any.
	FieldPath string
	// Suggestions are names the user probably meant.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add records a diagnostic under its severity and returns it for further decoration.
func (d *Diagnostics) Add(sev DiagnosticSeverity, code, message, typeName, fieldPath string) *Diagnostic {
	list := &d.Infos
	switch sev {
	case DiagnosticError:
		list = &d.Errors
	case DiagnosticWarning:
		list = &d.Warnings
	}

	*list = append(*list, Diagnostic{
		Severity:  sev,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})

	return &(*list)[len(*list)-1]
}

func (d *Diagnostics) AddError(code, message, typeName, fieldPath string) {
	d.Add(DiagnosticError, code, message, typeName, fieldPath)
}

func (d *Diagnostics) AddWarning(code, message, typeName, fieldPath string) {
	d.Add(DiagnosticWarning, code, message, typeName, fieldPath)
}

func (d *Diagnostics) AddInfo(code, message, typeName, fieldPath string) {
	d.Add(DiagnosticInfo, code, message, typeName, fieldPath)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Log writes every diagnostic to log: errors through Error, warnings at V(0) and
// infos at V(1).
func (d *Diagnostics) Log(log logr.Logger) {
	for _, e := range d.Errors {
		log.Error(errors.New(e.Message), "analysis failed", e.keysAndValues()...)
	}
	for _, w := range d.Warnings {
		log.Info(w.Message, w.keysAndValues()...)
	}
	for _, i := range d.Infos {
		log.V(1).Info(i.Message, i.keysAndValues()...)
	}
}

func (d Diagnostic) keysAndValues() []any {
	kv := []any{"severity", d.Severity.String()}
	if d.Code != "" {
		kv = append(kv, "code", d.Code)
	}
	if d.TypeName != "" {
		kv = append(kv, "type", d.TypeName)
	}
	if d.FieldPath != "" {
		kv = append(kv, "field", d.FieldPath)
	}
	if len(d.Suggestions) > 0 {
		kv = append(kv, "suggestions", d.Suggestions)
	}
	return kv
}

// Error joins the error diagnostics into one error, or returns nil when there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String renders "[Type] Field: [code] message (did you mean A, B?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.TypeName != "" {
		b.WriteString("[" + d.TypeName + "]")
	}
	if d.FieldPath != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.FieldPath)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}
	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}
