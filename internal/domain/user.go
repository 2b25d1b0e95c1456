package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account as seen by the matching core.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      UserRole
	Profile   AcademicProfile
	CreatedAt time.Time
}

// AcademicProfile holds the attributes the compatibility scorer compares.
// Zero values mean "unknown" and contribute nothing to a score.
type AcademicProfile struct {
	Institute      string
	FieldOfStudy   string
	EducationLevel EducationLevel
	Age            int
}
