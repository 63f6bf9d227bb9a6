// Package bom detects and removes the UTF-8 byte-order mark on raw bytes.
// Content is never decoded, so the check is exact on every platform.
package bom

import "bytes"

// Marker is the UTF-8 encoding of U+FEFF.
var Marker = []byte{0xEF, 0xBB, 0xBF}

// Has reports whether content starts with the UTF-8 BOM.
// Content shorter than the marker never matches.
func Has(content []byte) bool {
	return bytes.HasPrefix(content, Marker)
}

// Strip returns content without a leading BOM. Exactly one marker is removed;
// content without a BOM is returned as is.
func Strip(content []byte) []byte {
	if !Has(content) {
		return content
	}
	return content[len(Marker):]
}
