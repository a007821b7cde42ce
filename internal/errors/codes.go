package errors

// Error codes for the gavel toolchain. They appear in diagnostics and in the
// LSP so the same problem is identified the same way everywhere.
//
// Error code ranges:
// E0001-E0099: Static checks over a parsed program
// E0100-E0199: Lexer and parser errors
// W0800-W0899: Warning codes

const (
	// E0001: Two rules share a name
	ErrorDuplicateRule = "E0001"

	// E0002: Duration unit is not a known unit
	ErrorUnknownDurationUnit = "E0002"

	// E0003: Comparison between two literals
	ErrorConstantCondition = "E0003"

	// Lexer and parser errors (E0100-E0199)

	// E0100: Character that starts no token
	ErrorUnexpectedCharacter = "E0100"

	// E0101: Digit run that does not fit in int64
	ErrorInvalidNumberLiteral = "E0101"

	// E0102: Source ended in the middle of a construct
	ErrorUnexpectedEndOfInput = "E0102"

	// E0103: Token that cannot start the next construct
	ErrorUnexpectedToken = "E0103"

	// E0104: A specific token or construct was required
	ErrorExpectedToken = "E0104"

	// E0105: Parentheses or 'not' nested past the parser's limit
	ErrorNestingTooDeep = "E0105"

	// Warning codes

	// W0801: Rule without statements
	WarningEmptyRule = "W0801"

	// W0802: Same member listed twice in an 'in' set
	WarningDuplicateSetMember = "W0802"

	// W0803: 'not not x'
	WarningDoubleNegation = "W0803"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDuplicateRule:
		return "Rule name is declared more than once"
	case ErrorUnknownDurationUnit:
		return "Duration uses a unit that is not recognized"
	case ErrorConstantCondition:
		return "Comparison between two literal values"
	case ErrorUnexpectedCharacter:
		return "Character is not part of the rule language"
	case ErrorInvalidNumberLiteral:
		return "Number literal is out of range"
	case ErrorUnexpectedEndOfInput:
		return "Source ended before the construct was complete"
	case ErrorUnexpectedToken:
		return "Token is not allowed here"
	case ErrorExpectedToken:
		return "A different token was expected"
	case ErrorNestingTooDeep:
		return "Condition is nested too deeply"
	case WarningEmptyRule:
		return "Rule has no statements"
	case WarningDuplicateSetMember:
		return "Set member is listed more than once"
	case WarningDoubleNegation:
		return "Double negation cancels out"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Static Check"
	case code >= "E0100" && code < "E0200":
		return "Syntax"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
