package validator

// RegistrationRequest carries the parsed registration parameters from the
// request boundary. fullName, email, age, grade and category are required;
// age must fall in [10,25] inclusive.
type RegistrationRequest struct {
	FullName   string `json:"fullName" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Age        int    `json:"age" validate:"required,min=10,max=25"`
	Grade      string `json:"grade" validate:"required,max=50"`
	School     string `json:"school" validate:"omitempty,max=150"`
	Category   string `json:"category" validate:"required,oneof=principiante intermedio avanzado"`
	Experience string `json:"experience" validate:"omitempty,max=500"`
	Motivation string `json:"motivation" validate:"omitempty,max=1000"`
	Role       string `json:"role" validate:"omitempty,oneof=estudiante maestro padre otros"`
}

// VoteRequest is the role-vote payload. The voter id itself comes from the
// request boundary (a persisted client cookie), not the body.
type VoteRequest struct {
	Role string `json:"role" validate:"required"`
}
