package services

import (
	"context"
	"io"
	"time"

	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/query"
	"github.com/clubstem/registration-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use the validator request types directly.
type RegisterRequest = validator.RegistrationRequest

// RegistrationResponse is the confirmation subset returned to a new
// registrant; the full record never leaves the service.
type RegistrationResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Category         string    `json:"category"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// ListParticipantsRequest carries the recognized listing options.
type ListParticipantsRequest struct {
	Page         int    `form:"page,default=1"`
	Limit        int    `form:"limit,default=50"`
	Category     string `form:"category"`
	Grade        string `form:"grade"`
	SortBy       string `form:"sortBy,default=recent"`
	IncludeStats *bool  `form:"includeStats"`
}

type ParticipantListResponse struct {
	Participants []models.PublicParticipant  `json:"participants"`
	Pagination   query.Pagination            `json:"pagination"`
	Statistics   *models.AggregateStatistics `json:"statistics,omitempty"`
}

// ===== SERVICE INTERFACES =====

type ParticipantService interface {
	// Register validates, enforces email uniqueness, persists the record and
	// updates the rollup counters best-effort.
	Register(ctx context.Context, req *RegisterRequest) (*models.Participant, error)

	// List materializes the id-indexed set and runs the query pipeline over
	// it. Per-id fetch failures are skipped, never aborting the enumeration.
	List(ctx context.Context, req ListParticipantsRequest) (*ParticipantListResponse, error)
}

type StatsService interface {
	// RecordRegistration bumps the shared counters and today's daily record.
	// Loss of concurrent increments is accepted; callers swallow the error.
	RecordRegistration(ctx context.Context, role models.ParticipantRole) error

	// Weekly sums the last 7 calendar days, treating missing days as zero.
	Weekly(ctx context.Context) (int, error)

	// CategoryDistribution scans a bounded prefix of the index; it is an
	// approximation, not an exact total.
	CategoryDistribution(ctx context.Context) (map[models.Category]int, error)

	// Snapshot never fails: any sub-failure yields the all-zero default with
	// Degraded set.
	Snapshot(ctx context.Context) models.AggregateStatistics

	// Complete composes visitor, registration and vote figures for the public
	// statistics endpoint, best-effort per section.
	Complete(ctx context.Context) models.CompleteStatistics

	IncrementVisitors(ctx context.Context) error
	Visitors(ctx context.Context) models.VisitorStatistics
}

type VoteService interface {
	// Counts is read-only and best-effort per role: a failed read yields 0
	// and marks the response degraded. voterID may be empty.
	Counts(ctx context.Context, voterID string) models.RoleVoteCounts

	// CastVote enforces one vote per visitor via the global voted set, then
	// returns fresh counts.
	CastVote(ctx context.Context, voterID, role string) (models.RoleVoteCounts, error)

	// Reset clears the ledger, best-effort per key.
	Reset(ctx context.Context)
}

type ExportService interface {
	// WriteRoster streams the public roster as a spreadsheet.
	WriteRoster(ctx context.Context, w io.Writer) error
}

// ServiceManager aggregates the service set handed to the handlers.
type ServiceManager interface {
	Participant() ParticipantService
	Stats() StatsService
	Votes() VoteService
	Export() ExportService
}
