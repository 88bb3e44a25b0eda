package snapshot

import (
	"crypto/sha256"
	"encoding/gob"

	"github.com/google/uuid"

	"github.com/tsawler/folio/model"
)

const (
	VersionV1 uint16 = 1

	fixedHeaderSizeV1 uint32 = 72
)

// Magic is the 8-byte snapshot file signature.
var Magic = [8]byte{'F', 'O', 'L', 'I', 'O', '\r', '\n', 0x1A}

const (
	HeaderFlagSourceHash uint16 = 0x0001
)

type SectionType uint16

const (
	SectionLayout SectionType = 1
)

type Compression uint16

const (
	CompNone Compression = 0x0
	CompZSTD Compression = 0x1
	CompLZ4  Compression = 0x2
	CompBR   Compression = 0x3
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	default:
		return "unknown"
	}
}

const (
	sectionFlagCompressionMask    uint16 = 0x000F
	sectionFlagHasUncompressedLen uint16 = 0x0010
)

// Snapshot is a logical representation of a snapshot file: one computed
// layout plus the identity fields carried in the container header.
//
// ID distinguishes snapshots of the same document over time; Encode
// assigns a random one when it is zero. SourceHash optionally records a
// SHA-256 of whatever input state produced the layout, so a reader can
// tell a stale cache from a current one without decoding the payload.
// Layout MUST be present.
type Snapshot struct {
	ID         uuid.UUID
	SourceHash [32]byte
	Layout     *model.Layout
}

// HashSource returns the SHA-256 of a caller-defined serialization of
// the input that produced a layout, for use as Snapshot.SourceHash.
func HashSource(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Page fragments travel through the gob payload as interface values.
func init() {
	gob.Register(&model.ParagraphFragment{})
	gob.Register(&model.TableFragment{})
	gob.Register(&model.ImageFragment{})
}
