// Command mason drives the reversal analysis pipeline: it classifies a
// dataset path, runs the numeric analysis, renders figures, and assembles
// and renders the report. Invoked with no arguments it walks the user
// through an interactive run.
package main
