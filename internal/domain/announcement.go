package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoommateAnnouncement is a listing posted by a student looking for roommates.
// The matching core reads announcements, bumps ApplicationCount and stamps
// MatchNotifiedAt; every other field is owned by the listing subsystem.
type RoommateAnnouncement struct {
	ID               uuid.UUID
	PosterID         uuid.UUID
	Title            string
	Terms            PropertyTerms
	Preferences      RoommatePreferences
	Status           AnnouncementStatus
	ApplicationCount int
	CreatedAt        time.Time
	ExpiresAt        *time.Time
	// MatchNotifiedAt is set once the match fan-out has claimed the announcement.
	MatchNotifiedAt *time.Time
}

// PropertyTerms describes the shared housing on offer.
type PropertyTerms struct {
	MonthlyRent         float64
	Rooms               int
	MoveInDate          time.Time
	LeaseDurationMonths int
}

// RoommatePreferences describes who the poster is looking for.
type RoommatePreferences struct {
	Gender        string
	AgeMin        int
	AgeMax        int
	LifestyleTags []string
	MaxRoommates  int
}

// AcceptsApplications reports whether the announcement is open at now.
func (a *RoommateAnnouncement) AcceptsApplications(now time.Time) bool {
	if a.Status != AnnouncementStatusActive {
		return false
	}
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}
