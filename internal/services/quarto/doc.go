// Package quarto wraps the Quarto command line used to render the report
// source document into its PDF/HTML siblings.
package quarto
