package snapshot

type readConfig struct {
	limits       Limits
	expectSource bool
	expectedHash [32]byte
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithExpectedSource makes Decode fail with ErrSourceMismatch unless
// the snapshot header carries exactly this source hash. The check runs
// before the payload is read, so a stale snapshot is rejected without
// paying for decompression.
func WithExpectedSource(hash [32]byte) ReadOption {
	return func(c *readConfig) {
		c.expectSource = true
		c.expectedHash = hash
	}
}

type writeConfig struct {
	limits      Limits
	compression Compression
	assignID    bool
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

func WithCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}

// WithAssignID controls whether Encode fills a zero Snapshot.ID with a
// fresh random one (modifies snap in place). Pass false to keep a zero
// ID, which makes Encode output reproducible byte for byte.
func WithAssignID(v bool) WriteOption {
	return func(c *writeConfig) { c.assignID = v }
}
