package snapshot

import (
	"bytes"
	"crypto/subtle"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tsawler/folio/model"
)

// Decode reads a layout snapshot from r.
//
// The decoding process:
//  1. Reads and validates the 72-byte fixed header
//  2. Checks the recorded source hash against WithExpectedSource, if given
//  3. Reads and decompresses the layout section
//  4. Validates the decoded layout
//
// By default, Decode uses safe size limits so a hostile file cannot
// force a huge allocation. Use ReadOption functions to customize this
// behavior:
//   - WithReadLimits(l): set custom size limits
//   - WithExpectedSource(hash): reject snapshots of a different input
//
// Decode returns ErrInvalidMagic if the stream is not a snapshot file,
// ErrUnsupportedVersion if the version is not 1, ErrSourceMismatch if
// the recorded source hash differs from the expected one,
// ErrLimitExceeded if any size limit is exceeded, or ErrValidation if
// the decoded layout is malformed.
func Decode(r io.Reader, opts ...ReadOption) (*Snapshot, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readFixedHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Magic != Magic {
		return nil, ErrInvalidMagic
	}
	if h.FixedHdrSize != fixedHeaderSizeV1 {
		return nil, fmt.Errorf("%w: fixed header size %d", ErrInvalidHeader, h.FixedHdrSize)
	}
	if h.Version != VersionV1 {
		return nil, ErrUnsupportedVersion
	}
	if h.Reserved0 != 0 || h.Reserved1 != 0 {
		return nil, fmt.Errorf("%w: reserved must be zero", ErrInvalidHeader)
	}
	hasHash := (h.HeaderFlags & HeaderFlagSourceHash) != 0
	if hasHash && h.SourceHash == ([32]byte{}) {
		return nil, fmt.Errorf("%w: SOURCE_HASH flag set but hash is zero", ErrInvalidHeader)
	}
	if !hasHash && h.SourceHash != ([32]byte{}) {
		return nil, fmt.Errorf("%w: source hash present but SOURCE_HASH flag not set", ErrInvalidHeader)
	}
	if cfg.expectSource {
		if subtle.ConstantTimeCompare(h.SourceHash[:], cfg.expectedHash[:]) != 1 {
			return nil, ErrSourceMismatch
		}
	}

	sh, err := readSectionHeader(r)
	if err != nil {
		return nil, err
	}
	if err := validateSectionHeader(sh, SectionLayout); err != nil {
		return nil, err
	}
	if sh.PayloadLen > cfg.limits.MaxSectionLen {
		return nil, fmt.Errorf("%w: layout section too large", ErrLimitExceeded)
	}
	payload := make([]byte, sh.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	layoutGob, err := decompressPayload(sh, payload, cfg.limits.MaxUncompressed)
	if err != nil {
		return nil, err
	}
	var layout model.Layout
	if err := gobDecode(layoutGob, &layout); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:         uuid.UUID(h.SnapshotID),
		SourceHash: h.SourceHash,
		Layout:     &layout,
	}
	if err := validateSnapshot(snap, cfg.limits); err != nil {
		return nil, err
	}
	return snap, nil
}

// gobDecode deserializes data into out using Go's gob encoding.
func gobDecode(data []byte, out any) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	return dec.Decode(out)
}
