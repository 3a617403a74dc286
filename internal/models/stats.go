package models

import "time"

// SiteStatistics is the single shared counter record. It is read-modify-written
// on every registration without any cross-key locking; concurrent writers can
// lose increments (accepted, see the aggregator's failure policy).
type SiteStatistics struct {
	TotalParticipants int       `json:"totalParticipants"`
	Estudiantes       int       `json:"estudiantes"`
	Maestros          int       `json:"maestros"`
	Padres            int       `json:"padres"`
	Otros             int       `json:"otros"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// DailyStats holds the registration counter for one calendar day. The record
// expires 30 days after its last write.
type DailyStats struct {
	Registrations int `json:"registrations"`
}

// VoteRoles lists the role enumerants a visitor can vote for. The vote ledger
// keeps one membership set per entry plus a global voted set.
func VoteRoles() []string {
	return []string{"estudiantes", "maestros", "padres", "otros"}
}

// RoleVoteCounts carries the per-role set cardinalities of the vote ledger.
// Each count is independently best-effort: a failed read yields 0 and marks
// the response as degraded.
type RoleVoteCounts struct {
	Estudiantes int64 `json:"estudiantes"`
	Maestros    int64 `json:"maestros"`
	Padres      int64 `json:"padres"`
	Otros       int64 `json:"otros"`
	Voted       bool  `json:"voted"`
	Degraded    bool  `json:"degraded,omitempty"`
}

// AggregateStatistics is the snapshot attached to listing responses. Degraded
// reports that one or more sub-reads failed and zero defaults were substituted,
// so callers can tell "no data yet" from "read failed".
type AggregateStatistics struct {
	Total        int              `json:"total"`
	Estudiantes  int              `json:"estudiantes"`
	Maestros     int              `json:"maestros"`
	Padres       int              `json:"padres"`
	Otros        int              `json:"otros"`
	Today        int              `json:"today"`
	ThisWeek     int              `json:"thisWeek"`
	Distribution map[Category]int `json:"distribution"`
	LastUpdated  time.Time        `json:"lastUpdated"`
	Degraded     bool             `json:"degraded,omitempty"`
}

// VisitorStatistics mirrors the site visit counters.
type VisitorStatistics struct {
	Total    int64 `json:"total"`
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"thisWeek"`
	Degraded bool  `json:"degraded,omitempty"`
}

// CompleteStatistics is the response of the public statistics endpoint,
// composing visitor, registration and vote figures.
type CompleteStatistics struct {
	Visitantes              int64          `json:"visitantes"`
	VisitantesHoy           int64          `json:"visitantesHoy"`
	VisitantesSemana        int64          `json:"visitantesSemana"`
	Estudiantes             int            `json:"estudiantes"`
	Maestros                int            `json:"maestros"`
	Padres                  int            `json:"padres"`
	Otros                   int            `json:"otros"`
	ParticipantesOlimpiadas int64          `json:"participantesOlimpiadas"`
	RegistrosHoy            int            `json:"registrosHoy"`
	RoleVotes               RoleVoteCounts `json:"roleVotes"`
	LastUpdated             time.Time      `json:"lastUpdated"`
	ServerTime              time.Time      `json:"serverTime"`
	Degraded                bool           `json:"degraded,omitempty"`
}
