//go:build !race

package bq

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
