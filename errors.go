package ccompiler

import (
	"fmt"
	"strings"
)

// ErrorClass identifies which stage of the pipeline raised a CompileError,
// used both to format the diagnostic prefix and to let callers distinguish
// failure categories programmatically.
type ErrorClass int

const (
	ClassIO ErrorClass = iota
	ClassSyntax
	ClassSemantic
	ClassCodegen
)

func (c ErrorClass) prefix() string {
	switch c {
	case ClassIO:
		return "IO error"
	case ClassSyntax:
		return "Error"
	case ClassSemantic:
		return "Semantic error"
	case ClassCodegen:
		return "Code generation error"
	default:
		return "Error"
	}
}

// CompileError is the single error type raised by every stage of the
// pipeline. It carries an optional Span so diagnostics can point at source
// locations, and an optional Lexeme for the syntax-error message format
// spec.md §6 requires ("Error at '<lexeme>': ...").
type CompileError struct {
	Class   ErrorClass
	Message string
	Lexeme  string
	Span    Span
	HasSpan bool
}

func (e CompileError) Error() string {
	if e.Class == ClassSyntax && e.Lexeme != "" {
		return fmt.Sprintf("%s at '%s': %s", e.Class.prefix(), e.Lexeme, e.Message)
	}
	if e.HasSpan {
		return fmt.Sprintf("%s: %s @ %s", e.Class.prefix(), e.Message, e.Span)
	}
	return fmt.Sprintf("%s: %s", e.Class.prefix(), e.Message)
}

func newSyntaxError(tok Token, format string, args ...interface{}) CompileError {
	return CompileError{
		Class:   ClassSyntax,
		Message: fmt.Sprintf(format, args...),
		Lexeme:  tok.Lexeme,
		Span:    tok.Span,
		HasSpan: true,
	}
}

func newSemanticError(span Span, format string, args ...interface{}) CompileError {
	return CompileError{
		Class:   ClassSemantic,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
		HasSpan: true,
	}
}

func newCodegenError(format string, args ...interface{}) CompileError {
	return CompileError{
		Class:   ClassCodegen,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorReporter is the diagnostic sink held by the parser, the semantic
// analyzer and the code generator, mirroring the teacher's pattern of a
// single component holding the "last error" for its stage. The semantic
// analyzer and code generator stop at their first error, so their reporter
// only ever holds one. The parser is the exception: its panic-mode recovery
// (spec.md §7) keeps parsing past a syntax error to find more, so its
// reporter can accumulate several across one run, and Parse returns all of
// them together as CompileErrors for the driver to print.
type ErrorReporter struct {
	errs []CompileError
}

// Report records an error and returns it unchanged, so call sites can both
// record and propagate in one expression: `return nil, r.Report(err)`.
func (r *ErrorReporter) Report(err CompileError) CompileError {
	r.errs = append(r.errs, err)
	return err
}

// HasErrors reports whether any error has been recorded.
func (r *ErrorReporter) HasErrors() bool { return len(r.errs) > 0 }

// Errors returns every recorded error in report order.
func (r *ErrorReporter) Errors() []CompileError { return r.errs }

// CompileErrors is more than one CompileError recorded during a single run
// (only the parser's panic-mode recovery produces more than one). The driver
// prints each on its own line instead of just the first.
type CompileErrors []CompileError

func (es CompileErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}
