// Package utils provides internal utility functions for the bus tracker.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Great-circle distance calculation
//   - Time formatting utilities
//   - Shared constants
package utils
