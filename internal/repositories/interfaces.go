// Package repositories defines the data-access contracts over the key-value
// store. Every operation is single-key atomic at best; the contracts document
// where multi-key sequences are knowingly non-transactional.
package repositories

import (
	"context"
	"time"

	"github.com/clubstem/registration-service/internal/models"
)

// ParticipantRepository persists registration records and the ordered id index.
type ParticipantRepository interface {
	// Create writes the by-email record, pushes the id to the front of the
	// index and writes the by-id record. The three writes travel in one
	// pipeline but are not a transaction; a crash between them can leave the
	// index and the records out of step, which readers must tolerate.
	Create(ctx context.Context, p *models.Participant) error

	// GetByEmail returns nil without error when the normalized email has no
	// record.
	GetByEmail(ctx context.Context, email string) (*models.Participant, error)

	// GetByID returns nil without error when the id has no record.
	GetByID(ctx context.Context, id string) (*models.Participant, error)

	// ListIDs returns index entries from start to stop inclusive, most
	// recently registered first. stop = -1 means the whole index.
	ListIDs(ctx context.Context, start, stop int64) ([]string, error)

	// Count returns the index length.
	Count(ctx context.Context) (int64, error)
}

// StatsRepository persists the shared counter record and the per-day counters.
type StatsRepository interface {
	GetSiteStats(ctx context.Context) (models.SiteStatistics, error)
	SetSiteStats(ctx context.Context, stats models.SiteStatistics) error

	// GetDaily returns the zero record for days never written.
	GetDaily(ctx context.Context, date string) (models.DailyStats, error)

	// SetDaily writes the day's record and re-applies the 30-day expiry. The
	// expiry refresh is idempotent, not cumulative.
	SetDaily(ctx context.Context, date string, stats models.DailyStats) error
}

// VoteRepository is the set-based role vote ledger.
type VoteRepository interface {
	Count(ctx context.Context, role string) (int64, error)
	HasVoted(ctx context.Context, voterID string) (bool, error)

	// AddVote adds the voter to the global voted set and the role set. The
	// two adds are separate single-key operations.
	AddVote(ctx context.Context, voterID, role string) error

	// Reset clears the global voted set and every role set, best-effort per
	// key.
	Reset(ctx context.Context) error
}

// VisitorRepository persists the site visit counters.
type VisitorRepository interface {
	Total(ctx context.Context) (int64, error)
	Daily(ctx context.Context, date string) (int64, error)

	// Increment bumps both the total and the day's counter and refreshes the
	// daily key's 30-day expiry.
	Increment(ctx context.Context, date string) error
}

// Repository aggregates all store-backed repositories.
type Repository interface {
	Participant() ParticipantRepository
	Stats() StatsRepository
	Votes() VoteRepository
	Visitors() VisitorRepository

	Ping(ctx context.Context) error
	Close() error
}

// DailyStatsTTL is the retention of date-stamped counter keys.
const DailyStatsTTL = 30 * 24 * time.Hour

// DateKey formats a timestamp as the calendar-day key component.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
