package models

import (
	"strings"
	"time"
)

type ParticipantRole string

const (
	RoleEstudiante ParticipantRole = "estudiante"
	RoleMaestro    ParticipantRole = "maestro"
	RolePadre      ParticipantRole = "padre"
	RoleOtros      ParticipantRole = "otros"
)

type Category string

const (
	CategoryPrincipiante Category = "principiante"
	CategoryIntermedio   Category = "intermedio"
	CategoryAvanzado     Category = "avanzado"
)

// Categories lists every known category enumerant, in display order.
func Categories() []Category {
	return []Category{CategoryPrincipiante, CategoryIntermedio, CategoryAvanzado}
}

type ParticipantStatus string

const (
	StatusActive   ParticipantStatus = "active"
	StatusInactive ParticipantStatus = "inactive"
)

// Participant is the canonical registration record. It is written once on a
// successful registration and never updated afterwards; the email is the
// uniqueness key and the id is immutable once assigned.
type Participant struct {
	ID               string            `json:"id"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Age              int               `json:"age"`
	Grade            string            `json:"grade"`
	School           string            `json:"school"`
	Category         string            `json:"category"`
	Experience       string            `json:"experience"`
	Motivation       string            `json:"motivation"`
	Role             ParticipantRole   `json:"role"`
	RegistrationDate time.Time         `json:"registrationDate"`
	Status           ParticipantStatus `json:"status"`
}

// PublicParticipant is the only shape in which participant data leaves the
// system in listing responses. The email is stripped and replaced by derived
// initials.
type PublicParticipant struct {
	ID               string          `json:"id"`
	FullName         string          `json:"fullName"`
	Age              int             `json:"age"`
	Grade            string          `json:"grade"`
	School           string          `json:"school"`
	Category         string          `json:"category"`
	Experience       string          `json:"experience"`
	Role             ParticipantRole `json:"role"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Initials         string          `json:"initials"`
}

// PublicView projects the participant into its public listing form.
func (p *Participant) PublicView() PublicParticipant {
	return PublicParticipant{
		ID:               p.ID,
		FullName:         p.FullName,
		Age:              p.Age,
		Grade:            p.Grade,
		School:           p.School,
		Category:         p.Category,
		Experience:       p.Experience,
		Role:             p.Role,
		RegistrationDate: p.RegistrationDate,
		Initials:         p.Initials(),
	}
}

// Initials derives up to two upper-cased initials from the space-separated
// tokens of the full name.
func (p *Participant) Initials() string {
	var b strings.Builder
	for _, token := range strings.Fields(p.FullName) {
		b.WriteString(string([]rune(token)[:1]))
	}
	initials := strings.ToUpper(b.String())
	runes := []rune(initials)
	if len(runes) > 2 {
		return string(runes[:2])
	}
	return initials
}

// NormalizeEmail lower-cases and trims an email so that case and whitespace
// variants map to the same store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
