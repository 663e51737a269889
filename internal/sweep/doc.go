// Package sweep walks the chapter index and fills the verse cache.
//
// Run visits every selected chapter in ascending order and every verse from 1
// to the chapter's count. For each verse it either skips (file present), or
// fetches the markup, writes it, and pauses for the configured delay. Failures
// are reported per verse and never stop the sweep; a failed verse leaves no
// file and is retried on the next run.
//
// The sweep is strictly sequential. The remote service is third party and its
// rate limits are unknown, so only one request is ever in flight.
package sweep
