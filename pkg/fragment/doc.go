// Package fragment splits a template into literal text and placeholder tokens.
//
// Tokens are delimited by a configurable prefix and suffix, ${ and } by
// default. A delimiter preceded by the escape character is treated as text.
// Fragments carry inclusive rune offsets into the template so errors further
// down the pipeline can point back at their source.
package fragment
