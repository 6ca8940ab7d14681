// Package property resolves declarative format specifications against a song
// and a read-only status snapshot.
//
// A Spec is a recursive node: literal text, a song/status/widget property, a
// sticker lookup, or an ordered group of further specs. Every node may carry
// a style and a default spec consulted when the node fails to resolve.
// Groups are all-or-nothing: a single failing member discards the partial
// result and the group's own default is evaluated instead.
//
// Resolution never returns an error. Every failure degrades to "no value",
// reported through the boolean result.
package property
