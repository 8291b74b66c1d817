//go:build !sieve_debug

package sieve

import "github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"

// debugCheckInverses is a no-op in the default build; the real cross-check
// lives in sieve_debug.go behind the sieve_debug build tag.
func debugCheckInverses(table *primetable.Table) {}
