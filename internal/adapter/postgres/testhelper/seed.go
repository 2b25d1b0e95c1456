package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a STUDENT with the given academic profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool, profile domain.AcademicProfile) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleStudent, profile)
}

// SeedUserWithRole inserts a user with an explicit role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, profile domain.AcademicProfile) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "user-" + suffix + "@example.com",
		Role:      role,
		Profile:   profile,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role, institute, field_of_study, education_level, age, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Name, u.Email, string(u.Role),
		profile.Institute, profile.FieldOfStudy, string(profile.EducationLevel), profile.Age, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// AnnouncementOption tweaks a seeded announcement before insert.
type AnnouncementOption func(*domain.RoommateAnnouncement)

func WithStatus(s domain.AnnouncementStatus) AnnouncementOption {
	return func(a *domain.RoommateAnnouncement) { a.Status = s }
}

func WithExpiresAt(t time.Time) AnnouncementOption {
	return func(a *domain.RoommateAnnouncement) { a.ExpiresAt = &t }
}

func WithCreatedAt(t time.Time) AnnouncementOption {
	return func(a *domain.RoommateAnnouncement) { a.CreatedAt = t }
}

// SeedAnnouncement inserts an ACTIVE announcement owned by posterID.
func SeedAnnouncement(t *testing.T, pool *pgxpool.Pool, posterID uuid.UUID, opts ...AnnouncementOption) domain.RoommateAnnouncement {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.RoommateAnnouncement{
		ID:       uuid.New(),
		PosterID: posterID,
		Title:    "Room near campus " + uniqueSuffix(),
		Terms: domain.PropertyTerms{
			MonthlyRent:         450,
			Rooms:               3,
			MoveInDate:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			LeaseDurationMonths: 12,
		},
		Preferences: domain.RoommatePreferences{
			AgeMin:        18,
			AgeMax:        30,
			LifestyleTags: []string{"quiet", "non-smoker"},
			MaxRoommates:  2,
		},
		Status:    domain.AnnouncementStatusActive,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(&a)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO roommate_announcements
		   (id, poster_id, title, monthly_rent, rooms, move_in_date, lease_duration_months,
		    pref_gender, pref_age_min, pref_age_max, lifestyle_tags, max_roommates,
		    status, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.PosterID, a.Title, a.Terms.MonthlyRent, a.Terms.Rooms, a.Terms.MoveInDate, a.Terms.LeaseDurationMonths,
		a.Preferences.Gender, a.Preferences.AgeMin, a.Preferences.AgeMax, a.Preferences.LifestyleTags, a.Preferences.MaxRoommates,
		string(a.Status), a.CreatedAt, a.ExpiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnnouncement: %v", err)
	}

	return a
}

// SeedApplication inserts an application in the given status.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, applicantID, announcementID uuid.UUID, status domain.ApplicationStatus) domain.RoommateApplication {
	t.Helper()

	app := domain.RoommateApplication{
		ID:                 uuid.New(),
		ApplicantID:        applicantID,
		AnnouncementID:     announcementID,
		Message:            "Hi, I'd like to join.",
		CompatibilityScore: 0.5,
		Status:             status,
		AppliedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO roommate_applications (id, applicant_id, announcement_id, message, compatibility_score, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.ApplicantID, app.AnnouncementID, app.Message, app.CompatibilityScore, string(app.Status), app.AppliedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}

// SeedConnection inserts a connection request in the given status.
func SeedConnection(t *testing.T, pool *pgxpool.Pool, senderID, receiverID uuid.UUID, status domain.ConnectionStatus) domain.ConnectionRequest {
	t.Helper()

	req := domain.ConnectionRequest{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     status,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO connection_requests (id, sender_id, receiver_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		req.ID, req.SenderID, req.ReceiverID, string(req.Status), req.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConnection: %v", err)
	}

	return req
}
