// Package figures renders per-track reversal plots and a combined overview
// from the analysis stage's CSV artifacts.
package figures
