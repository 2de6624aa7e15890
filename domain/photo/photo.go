// Package photo defines the Photo record read from the photo database.
package photo

import "strconv"

// FieldCount is the number of displayable fields on a Photo.
const FieldCount = 5

// Photo is a single row of the photo table. Records are owned by the
// database; the application only holds read-only copies.
type Photo struct {
	// ID is the primary key of the source table
	ID int64

	// OriginalPath is the filesystem path to the source image
	OriginalPath string

	// CompressedPath is the filesystem path to the compressed variant
	CompressedPath string

	// OriginalSize is the byte size of the source image
	OriginalSize int64

	// CompressedSize is the byte size of the compressed image
	CompressedSize int64

	// OriginalSizeMissing and CompressedSizeMissing mark sizes the
	// database stored as NULL. The size is 0 and displays as empty.
	OriginalSizeMissing   bool
	CompressedSizeMissing bool
}

// Fields returns the stringified field values in column order:
// id, original_path, compressed_path, original_size, compressed_size.
func (p *Photo) Fields() [FieldCount]string {
	return [FieldCount]string{
		strconv.FormatInt(p.ID, 10),
		p.OriginalPath,
		p.CompressedPath,
		formatSize(p.OriginalSize, p.OriginalSizeMissing),
		formatSize(p.CompressedSize, p.CompressedSizeMissing),
	}
}

func formatSize(size int64, missing bool) string {
	if missing {
		return ""
	}
	return strconv.FormatInt(size, 10)
}

// SavedBytes returns how many bytes compression saved. Negative when the
// compressed file is larger than the original.
func (p *Photo) SavedBytes() int64 {
	return p.OriginalSize - p.CompressedSize
}

// Summary aggregates a snapshot of photos.
type Summary struct {
	Count           int
	OriginalBytes   int64
	CompressedBytes int64
}

// Summarize computes the Summary for the given photos.
func Summarize(photos []*Photo) Summary {
	s := Summary{Count: len(photos)}
	for _, p := range photos {
		if p == nil {
			continue
		}
		s.OriginalBytes += p.OriginalSize
		s.CompressedBytes += p.CompressedSize
	}
	return s
}

// SavedBytes returns the total bytes saved across the snapshot.
func (s Summary) SavedBytes() int64 {
	return s.OriginalBytes - s.CompressedBytes
}

// SavedRatio returns the fraction of original bytes saved, at most 1.
// Returns 0 when there are no original bytes.
func (s Summary) SavedRatio() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.SavedBytes()) / float64(s.OriginalBytes)
}
