// Package report assembles the Quarto source document that summarises an
// analysis run: per-track statistics, reversal counts, and the generated
// figures.
package report
