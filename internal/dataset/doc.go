// Package dataset classifies filesystem paths into the dataset shapes the
// pipeline understands.
//
// A path resolves to one of four kinds: a single experiment file, an
// experiment set (a directory holding a matfiles/ store), a collection of
// experiment sets, or unknown. Classification also discovers the track
// identifiers available at the root by enumerating track<N>.mat files inside
// a tracks-suffixed directory.
//
// Classify never returns an error: a missing or unrecognizable path degrades
// to KindUnknown with an empty track set. The decision rules are an ordered
// table; the first matching rule wins.
package dataset
