// Package artifact locates and downloads pre-built led-matrix-rs
// release binaries.
//
// Artifacts are published on GitHub releases under a fixed naming
// scheme: the application name, a hyphen, and the architecture tag,
// with no extension and no checksum suffix. Locating an artifact is a
// pure function of the version selector and architecture tag.
//
// Downloading happens into a fresh private temporary directory that the
// Downloader owns until it hands the result to the caller. On any
// failure the directory is removed before the error is returned, so a
// failed run never leaves partial downloads behind.
package artifact
