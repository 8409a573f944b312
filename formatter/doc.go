// Package formatter provides response wrapping and serialization for the
// bus tracker's delivery payloads.
//
// This package is organized into:
// - types.go: Delivery envelope types (itineraries, arrivals, errors)
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML serialization is done manually for precise control over output format.
package formatter
