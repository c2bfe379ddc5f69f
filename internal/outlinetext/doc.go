// Package outlinetext reads and writes the indented plain-text outline format.
//
// One item per line. Each level of depth is two spaces or one tab. An optional
// marker before the item text sets its state:
//
//	+ expanded
//	- collapsed (also the default for unmarked lines)
//	# group item (root level only)
//	#+ group item with its expansion flag set
//
// Lines starting with ";" are comments. The first line may be the header
// "Outline Snapshot 1". Input is UTF-8 unless a byte order mark or
// ParseOptions.InputEncoding says otherwise; UTF-16LE and Windows-1252 are
// supported in both directions.
package outlinetext
