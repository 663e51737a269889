// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr and are only shown when the caller has checked
// that the session is interactive.
package prompt
