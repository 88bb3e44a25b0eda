package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tsawler/folio/model"
)

// Function variables for testing injection.
var (
	gobEncodeLayout = func(l *model.Layout) ([]byte, error) { return gobEncode(l) }
	newSnapshotID   = uuid.New
)

// Encode writes snap to w using the snapshot v1 container format.
//
// The snapshot is validated before writing. Validation includes
// checking that:
//   - A layout is present
//   - Pages are dense and 1-indexed with positive sizes
//   - Resolved fields reference pages that exist
//   - Size limits are not exceeded
//
// By default, Encode will:
//   - Use Zstandard (CompZSTD) compression for the layout section
//   - Assign a fresh random ID when snap.ID is zero (modifies snap in place)
//
// Use WriteOption functions to customize this behavior:
//   - WithCompression(comp): change the layout section compression
//   - WithWriteLimits(l): set custom size limits
//   - WithAssignID(false): keep a zero ID for reproducible output
func Encode(w io.Writer, snap *Snapshot, opts ...WriteOption) error {
	cfg := writeConfig{
		limits:      defaultLimits(),
		compression: CompZSTD,
		assignID:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrValidation)
	}

	if cfg.assignID && snap.ID == uuid.Nil {
		snap.ID = newSnapshotID()
	}

	if err := validateSnapshot(snap, cfg.limits); err != nil {
		return err
	}

	layoutGob, err := gobEncodeLayout(snap.Layout)
	if err != nil {
		return err
	}
	flags, payload, err := compressPayload(cfg.compression, layoutGob)
	if err != nil {
		return err
	}
	if uint64(len(payload)) > cfg.limits.MaxSectionLen {
		return fmt.Errorf("%w: layout section too large", ErrLimitExceeded)
	}

	var headerFlags uint16
	if snap.SourceHash != ([32]byte{}) {
		headerFlags |= HeaderFlagSourceHash
	}
	h := fixedHeaderV1{
		Magic:        Magic,
		Version:      VersionV1,
		HeaderFlags:  headerFlags,
		FixedHdrSize: fixedHeaderSizeV1,
		SnapshotID:   [16]byte(snap.ID),
		SourceHash:   snap.SourceHash,
		Reserved0:    0,
		Reserved1:    0,
	}
	if err := writeFixedHeader(w, h); err != nil {
		return err
	}

	sh := sectionHeaderV1{
		SectionType:  uint16(SectionLayout),
		SectionFlags: flags,
		PayloadLen:   uint64(len(payload)),
		Reserved:     0,
	}
	if err := writeSectionHeader(w, sh); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// gobEncode serializes v using Go's gob encoding.
func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
