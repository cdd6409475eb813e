package repositories

import (
	"gorm.io/gorm"
)

// SequenceRepository issues monotonically increasing sequence numbers, one
// stream per counter name. Next is a single atomic statement so two
// concurrent callers can never receive the same number.
type SequenceRepository interface {
	Next(name string) (int64, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) Next(name string) (int64, error) {
	var seq int64
	err := r.db.Raw(
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		name,
	).Scan(&seq).Error
	return seq, err
}
