package domain

// Package artifact constants
const (
	// ManifestFileName is the metadata file written at the root of every
	// exported package folder.
	ManifestFileName = "manifest.json"

	// DefaultThumbnailExt is the extension of the companion image copied
	// alongside a payload when one exists with the same base name.
	DefaultThumbnailExt = ".png"
)

// Aggregation defaults
const (
	// DefaultErrorDisplayLimit caps the error strings carried on a batch
	// summary; the remainder is collapsed into a trailing count marker.
	DefaultErrorDisplayLimit = 10
)
