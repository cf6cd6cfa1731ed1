// Package textutil provides filename-safe text sanitization for output
// naming.
//
// Sanitization applies to metadata titles only; trackids and podcast ids are
// never rewritten so reconciliation stays reversible from the reports.
package textutil
