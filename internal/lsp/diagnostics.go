package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"gavel/internal/errors"
)

const diagnosticSource = "gavel"

// ConvertCompilerErrors transforms lexer, parser and checker diagnostics into
// LSP diagnostics for IDE display. Suggestions and notes are folded into the
// message since the protocol has no place for them.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		// Positions without a location are pinned to the start of the file.
		line, column := 0, 0
		if err.Position.IsValid() {
			line = err.Position.Line - 1     // Convert to 0-based indexing
			column = err.Position.Column - 1 // Convert to 0-based indexing
		}

		length := err.Length
		if length <= 0 {
			length = 1
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(line),
					Character: uint32(column),
				},
				End: protocol.Position{
					Line:      uint32(line),
					Character: uint32(column + length),
				},
			},
			Severity: ptrSeverity(severityOf(err.Level)),
			Code:     &protocol.IntegerOrString{Value: err.Code},
			Source:   ptrString(diagnosticSource),
			Message:  diagnosticMessage(err),
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func diagnosticMessage(err errors.CompilerError) string {
	msg := err.Message
	for _, s := range err.Suggestions {
		msg += "\nsuggestion: " + s.Message
	}
	for _, note := range err.Notes {
		msg += "\nnote: " + note
	}
	if err.HelpText != "" {
		msg += "\nhelp: " + err.HelpText
	}
	return msg
}

func severityOf(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
