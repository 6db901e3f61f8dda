// Package basics holds small typed helpers: float and string arithmetic, list
// and tuple transformations, and a few generic lookups.
package basics
