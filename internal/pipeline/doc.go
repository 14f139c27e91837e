// Package pipeline orchestrates the four run stages: numeric analysis,
// figure generation, report assembly, and report rendering. Analysis failure
// halts the run; the later stages can be configured to halt or carry on.
package pipeline
