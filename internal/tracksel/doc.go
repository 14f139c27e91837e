// Package tracksel parses track-selection expressions.
//
// An expression is either the keyword "all" or a comma-separated list of
// positive integers and inclusive ranges ("1,3,5-10,15"). Parsing is
// deliberately permissive: tokens that cannot be interpreted are dropped,
// never reported as errors, though the Selection records them for callers
// that want to surface a warning. Expand applies the caller-side fallback
// policy that turns an empty selection into "all available" or "no
// restriction".
package tracksel
