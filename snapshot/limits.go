package snapshot

type Limits struct {
	MaxSectionLen   uint64 // compressed payload length as stored in file
	MaxUncompressed uint64 // gob bytes after decompression
	MaxPages        int
	MaxFragments    int // total across all pages
}

func defaultLimits() Limits {
	return Limits{
		MaxSectionLen:   1 << 30,   // 1 GiB stored payload cap
		MaxUncompressed: 256 << 20, // 256 MiB
		MaxPages:        100_000,
		MaxFragments:    5_000_000,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxSectionLen == 0 {
		l.MaxSectionLen = d.MaxSectionLen
	}
	if l.MaxUncompressed == 0 {
		l.MaxUncompressed = d.MaxUncompressed
	}
	if l.MaxPages == 0 {
		l.MaxPages = d.MaxPages
	}
	if l.MaxFragments == 0 {
		l.MaxFragments = d.MaxFragments
	}
	return l
}
