package kvstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/models"
)

func TestCodecRoundTripsParticipant(t *testing.T) {
	p := &models.Participant{
		ID:               "participant_1234_abc",
		FullName:         "Ana María López",
		Email:            "ana@example.com",
		Age:              14,
		Category:         "avanzado",
		Role:             models.RoleEstudiante,
		RegistrationDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:           models.StatusActive,
	}

	data, err := Encode(p)
	require.NoError(t, err)

	got, err := DecodeParticipant(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodeAbsentKeysYieldZeroValues(t *testing.T) {
	p, err := DecodeParticipant("")
	require.NoError(t, err)
	assert.Nil(t, p)

	stats, err := DecodeSiteStats("")
	require.NoError(t, err)
	assert.Equal(t, models.SiteStatistics{}, stats)

	daily, err := DecodeDailyStats("")
	require.NoError(t, err)
	assert.Equal(t, 0, daily.Registrations)
}

func TestDecodeMalformedDataFails(t *testing.T) {
	_, err := DecodeParticipant("{not json")
	assert.Error(t, err)

	_, err = DecodeSiteStats("][")
	assert.Error(t, err)

	_, err = DecodeDailyStats("nope{")
	assert.Error(t, err)
}
