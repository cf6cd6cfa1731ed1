// Package ttml parses TTML subtitle documents into ordered transcript
// segments.
//
// The parser is namespace tolerant: paragraphs are matched by local element
// name, so documents using the W3C TTML namespace, a prefixed form, or no
// namespace at all produce identical results. Only paragraph text and the
// begin attribute survive; styling and layout are ignored.
package ttml
