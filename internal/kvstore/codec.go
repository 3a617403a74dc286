package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/clubstem/registration-service/internal/models"
)

// The codec serializes entities to the string values the store holds. Absent
// keys are a normal condition handled by the repositories: every decode helper
// has a documented zero value that stands in for "entity not yet created".
// Malformed stored data, by contrast, is surfaced as a decode error.

// Encode marshals an entity to its stored string form.
func Encode(entity any) (string, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(data), nil
}

// DecodeParticipant decodes a stored participant record. An empty value means
// the participant does not exist and yields nil without error.
func DecodeParticipant(data string) (*models.Participant, error) {
	if data == "" {
		return nil, nil
	}
	var p models.Participant
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode participant: %w", err)
	}
	return &p, nil
}

// DecodeSiteStats decodes the shared statistics record, substituting the zero
// record when the key has never been written.
func DecodeSiteStats(data string) (models.SiteStatistics, error) {
	if data == "" {
		return models.SiteStatistics{}, nil
	}
	var s models.SiteStatistics
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return models.SiteStatistics{}, fmt.Errorf("decode site statistics: %w", err)
	}
	return s, nil
}

// DecodeDailyStats decodes a per-day counter record; a missing key counts as
// zero registrations.
func DecodeDailyStats(data string) (models.DailyStats, error) {
	if data == "" {
		return models.DailyStats{}, nil
	}
	var d models.DailyStats
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return models.DailyStats{}, fmt.Errorf("decode daily stats: %w", err)
	}
	return d, nil
}
