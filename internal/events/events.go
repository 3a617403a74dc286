// Package events publishes domain events over watermill. The in-process
// gochannel pub/sub is the default; a Kafka publisher is used when brokers
// are configured.
package events

import "time"

const (
	TopicParticipantRegistered = "participant.registered"
	TopicRoleVoteCast          = "role.vote.cast"
	TopicStoreConnectivity     = "store.connectivity.changed"
)

type ParticipantRegistered struct {
	ParticipantID string    `json:"participant_id"`
	Category      string    `json:"category"`
	Role          string    `json:"role"`
	RegisteredAt  time.Time `json:"registered_at"`
}

type RoleVoteCast struct {
	Role   string    `json:"role"`
	CastAt time.Time `json:"cast_at"`
}

type StoreConnectivityChanged struct {
	Connected bool   `json:"connected"`
	Reason    string `json:"reason,omitempty"`
}
