// Package ingest reads the input file: one integer per line. Lines that do not
// hold an integer are kept, by their trimmed text, for the report instead of
// stopping the run.
package ingest
