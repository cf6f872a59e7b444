// Package codecs defines the closed enumerations of containers and codecs
// this tool recognizes in ffmpeg output.
//
// Each enumeration value is the canonical token ffmpeg prints for that
// container or codec. Lookups never fail: an unknown token resolves to the
// zero value with ok=false, so callers represent "unrecognized" explicitly
// instead of carrying raw strings around.
package codecs
