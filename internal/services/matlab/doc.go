// Package matlab wraps the MATLAB command line for the numeric analysis
// stage. The analysis entry point is invoked in batch mode as
// <function>(dataset, tracks, results_dir); a non-zero exit marks the stage
// as failed.
package matlab
