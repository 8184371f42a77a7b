// Package core provides fundamental types and utilities for the matcher platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GridIndex converts a (col, row) cell to a flat index in a size x size grid.
func GridIndex(col, row, size int) int {
	return row*size + col
}

// GridCell converts a flat index back to (col, row).
func GridCell(index, size int) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	return index % size, index / size
}
