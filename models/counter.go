package models

import "fmt"

// Sequence keys, one per entity collection.
const (
	SequenceArtists  = "artists"
	SequenceArts     = "arts"
	SequenceBlogs    = "blogs"
	SequenceComments = "comments"
)

// Counter is a per-entity sequence record. Seq is only ever read by
// incrementing it; there is no peek-without-consume.
type Counter struct {
	Name string `json:"name" gorm:"primarykey;size:32"`
	Seq  int64  `json:"seq" gorm:"not null"`
}

// FormatSequence renders a sequence number as the public ID token:
// decimal, zero-padded to five digits.
func FormatSequence(seq int64) string {
	return fmt.Sprintf("%05d", seq)
}
