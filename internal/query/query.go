// Package query is the pure in-memory pipeline applied to participant lists
// already materialized from the store: filter, then sort, then paginate.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/clubstem/registration-service/internal/models"
)

// Sort keys accepted by Options.SortBy. Anything else falls back to
// SortRecent.
const (
	SortRecent   = "recent"
	SortOldest   = "oldest"
	SortName     = "name"
	SortCategory = "category"
	SortGrade    = "grade"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

type Options struct {
	Category string
	Grade    string
	SortBy   string
	Page     int
	Limit    int
}

type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Apply filters, sorts and paginates. Only active participants enter the
// pipeline; category and grade filters are exact case-insensitive matches.
func Apply(participants []*models.Participant, opts Options) ([]*models.Participant, Pagination) {
	if opts.Page < 1 {
		opts.Page = DefaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultLimit
	}

	filtered := filter(participants, opts)
	sortParticipants(filtered, opts.SortBy)
	return paginate(filtered, opts)
}

func filter(participants []*models.Participant, opts Options) []*models.Participant {
	out := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if p == nil || p.Status != models.StatusActive {
			continue
		}
		if opts.Category != "" && !strings.EqualFold(p.Category, opts.Category) {
			continue
		}
		if opts.Grade != "" && !strings.EqualFold(p.Grade, opts.Grade) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortParticipants(participants []*models.Participant, sortBy string) {
	var less func(a, b *models.Participant) bool
	switch sortBy {
	case SortOldest:
		less = func(a, b *models.Participant) bool {
			return a.RegistrationDate.Before(b.RegistrationDate)
		}
	case SortName:
		less = func(a, b *models.Participant) bool {
			return a.FullName < b.FullName
		}
	case SortCategory:
		less = func(a, b *models.Participant) bool {
			return a.Category < b.Category
		}
	case SortGrade:
		less = func(a, b *models.Participant) bool {
			return a.Grade < b.Grade
		}
	default: // SortRecent
		less = func(a, b *models.Participant) bool {
			return a.RegistrationDate.After(b.RegistrationDate)
		}
	}
	sort.SliceStable(participants, func(i, j int) bool {
		return less(participants[i], participants[j])
	})
}

func paginate(participants []*models.Participant, opts Options) ([]*models.Participant, Pagination) {
	total := len(participants)
	totalPages := int(math.Ceil(float64(total) / float64(opts.Limit)))

	offset := (opts.Page - 1) * opts.Limit
	end := offset + opts.Limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	return participants[offset:end], Pagination{
		Total:      total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
		HasNext:    opts.Page < totalPages,
		HasPrev:    opts.Page > 1 && total > 0,
	}
}
