// Package snapshot serializes computed layouts to a compact binary
// container so callers can cache pagination results between edits.
//
// A snapshot file is a fixed header (magic, version, snapshot ID,
// optional source hash) followed by one compressed section holding the
// gob-encoded [model.Layout]. The layout engine itself is stateless; an
// editor that wants to skip redundant passes writes a snapshot after
// each pass and reloads it while the document is unchanged:
//
//	var buf bytes.Buffer
//	err := snapshot.Encode(&buf, &snapshot.Snapshot{
//		SourceHash: snapshot.HashSource(docState),
//		Layout:     result,
//	})
//
//	snap, err := snapshot.Decode(&buf,
//		snapshot.WithExpectedSource(snapshot.HashSource(docState)))
//
// Decode enforces size limits on every length read from the file, so a
// truncated or hostile stream fails with an error instead of a huge
// allocation.
package snapshot
