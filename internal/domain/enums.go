package domain

// EducationLevel is the academic degree a student is enrolled in.
// The empty value means the level is unknown.
type EducationLevel string

const (
	EducationLevelBachelor EducationLevel = "BACHELOR"
	EducationLevelMasters  EducationLevel = "MASTERS"
	EducationLevelPhD      EducationLevel = "PHD"
)

func (l EducationLevel) String() string { return string(l) }

func (l EducationLevel) IsValid() bool {
	switch l {
	case EducationLevelBachelor, EducationLevelMasters, EducationLevelPhD:
		return true
	}
	return false
}

// Ordinal returns the position of the level on the degree ladder
// (BACHELOR=1, MASTERS=2, PHD=3) and 0 for unknown levels.
func (l EducationLevel) Ordinal() int {
	switch l {
	case EducationLevelBachelor:
		return 1
	case EducationLevelMasters:
		return 2
	case EducationLevelPhD:
		return 3
	}
	return 0
}

// AnnouncementStatus is the lifecycle state of a roommate announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusActive  AnnouncementStatus = "ACTIVE"
	AnnouncementStatusPaused  AnnouncementStatus = "PAUSED"
	AnnouncementStatusFilled  AnnouncementStatus = "FILLED"
	AnnouncementStatusExpired AnnouncementStatus = "EXPIRED"
)

func (s AnnouncementStatus) String() string { return string(s) }

func (s AnnouncementStatus) IsValid() bool {
	switch s {
	case AnnouncementStatusActive, AnnouncementStatusPaused, AnnouncementStatusFilled, AnnouncementStatusExpired:
		return true
	}
	return false
}

// ApplicationStatus is the state of a roommate application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s != ApplicationStatusPending
}

// ConnectionStatus is the state of a connection request.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

func (s ConnectionStatus) String() string { return string(s) }

func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusRejected:
		return true
	}
	return false
}

// Decision is the answer a receiver or poster gives to a pending item.
type Decision string

const (
	DecisionAccepted Decision = "ACCEPTED"
	DecisionRejected Decision = "REJECTED"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// UserRole represents the kind of account.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleOwner   UserRole = "OWNER"
	UserRoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleOwner, UserRoleAdmin:
		return true
	}
	return false
}
