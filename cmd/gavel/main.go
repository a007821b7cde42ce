// Gavel checks data-governance rule files.
//
// Usage:
//
//	# Check rule files and report diagnostics
//	gavel check policy.rules
//
//	# Also parse with the declarative grammar and compare the results
//	gavel check --cross-check policy.rules
//
//	# Print the syntax tree as YAML
//	gavel parse --format yaml policy.rules
//
//	# Rewrite files in canonical form
//	gavel fmt -w policy.rules
//
//	# Re-check on every save
//	gavel watch policies/
package main

func main() {
	Execute()
}
