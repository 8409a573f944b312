// Package tracking provides real-time per-stop arrival estimation.
//
// This package handles:
// - Selecting the vehicles approaching a target stop from a live snapshot
// - The at-target and final-approach special cases
// - Pricing the remaining ride with the shared duration model
//
// A snapshot is a point-in-time capture from the live vehicle feed; it is
// never cached here and goes stale within seconds, so callers re-estimate
// on every poll cycle and discard results superseded by a newer request.
package tracking
