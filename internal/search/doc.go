// Package search scans saved transcript text files for a query string and
// returns matching lines with optional surrounding context.
package search
