// Package preflight provides readiness checks for the external tools and
// filesystem paths the pipeline depends on.
//
// The interactive flow runs RunAll before accepting input so a doomed run is
// caught before MATLAB spends an hour on it; the "check" command prints the
// same results as a table. Summary collapses the results into the (ok,
// missing) pair the CLI surfaces.
package preflight
