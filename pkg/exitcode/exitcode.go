// Package exitcode provides public constants for external tools
// integrating with lintgate (git hooks, CI steps, editor plugins).
package exitcode

// Exit codes returned by the lintgate CLI.
// Callers should check these symbolically rather than using magic numbers.
const (
	// Clean indicates the lint tool found no issues, or fixed all
	// issues automatically.
	Clean = 0

	// Blocked indicates the lint tool left unfixable violations, or
	// terminated abnormally (including the tool not being installed).
	Blocked = 2
)
