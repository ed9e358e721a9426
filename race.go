//go:build race

package bq

// RaceEnabled is true when the race detector is active. The concurrent
// tests in this module are excluded under the race detector by their
// `//go:build !race` tag, not by this constant.
const RaceEnabled = true
