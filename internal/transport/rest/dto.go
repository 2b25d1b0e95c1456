package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation/compat"
)

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func toPage[S, T any](res domain.PageResult[S], page domain.Page, conv func(*S) T) pageResponse[T] {
	page = page.Normalize()
	items := make([]T, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, conv(&res.Items[i]))
	}
	return pageResponse[T]{Items: items, Total: res.Total, Limit: page.Limit, Offset: page.Offset}
}

// ----- Connection requests -----

type sendConnectionRequest struct {
	ReceiverID uuid.UUID `json:"receiverId"`
	Message    *string   `json:"message"`
}

type respondRequest struct {
	Decision        domain.Decision `json:"decision"`
	ResponseMessage *string         `json:"responseMessage"`
}

type connectionResponse struct {
	ID              uuid.UUID  `json:"id"`
	SenderID        uuid.UUID  `json:"senderId"`
	ReceiverID      uuid.UUID  `json:"receiverId"`
	PeerID          uuid.UUID  `json:"peerId"`
	Message         *string    `json:"message,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
	ResponseMessage *string    `json:"responseMessage,omitempty"`
	IsPending       bool       `json:"isPending"`
	IsAccepted      bool       `json:"isAccepted"`
	IsRejected      bool       `json:"isRejected"`
}

// connectionView renders requests as seen by viewer; PeerID is the other side.
func connectionView(viewer uuid.UUID) func(*domain.ConnectionRequest) connectionResponse {
	return func(c *domain.ConnectionRequest) connectionResponse {
		return toConnectionResponse(c, viewer)
	}
}

func toConnectionResponse(c *domain.ConnectionRequest, viewer uuid.UUID) connectionResponse {
	return connectionResponse{
		ID:              c.ID,
		SenderID:        c.SenderID,
		ReceiverID:      c.ReceiverID,
		PeerID:          c.Counterpart(viewer),
		Message:         c.Message,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		RespondedAt:     c.RespondedAt,
		ResponseMessage: c.ResponseMessage,
		IsPending:       c.IsPending(),
		IsAccepted:      c.IsAccepted(),
		IsRejected:      c.IsRejected(),
	}
}

type connectionStatusResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Connected bool      `json:"connected"`
}

// ----- Roommate applications -----

type applyRequest struct {
	Message string `json:"message"`
}

type applicationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ApplicantID        uuid.UUID  `json:"applicantId"`
	AnnouncementID     uuid.UUID  `json:"announcementId"`
	Message            string     `json:"message"`
	CompatibilityScore float64    `json:"compatibilityScore"`
	Status             string     `json:"status"`
	AppliedAt          time.Time  `json:"appliedAt"`
	RespondedAt        *time.Time `json:"respondedAt,omitempty"`
	ResponseMessage    *string    `json:"responseMessage,omitempty"`
	IsPending          bool       `json:"isPending"`
	IsAccepted         bool       `json:"isAccepted"`
	IsRejected         bool       `json:"isRejected"`
	IsWithdrawn        bool       `json:"isWithdrawn"`
}

func toApplicationResponse(a *domain.RoommateApplication) applicationResponse {
	return applicationResponse{
		ID:                 a.ID,
		ApplicantID:        a.ApplicantID,
		AnnouncementID:     a.AnnouncementID,
		Message:            a.Message,
		CompatibilityScore: a.CompatibilityScore,
		Status:             string(a.Status),
		AppliedAt:          a.AppliedAt,
		RespondedAt:        a.RespondedAt,
		ResponseMessage:    a.ResponseMessage,
		IsPending:          a.IsPending(),
		IsAccepted:         a.IsAccepted(),
		IsRejected:         a.IsRejected(),
		IsWithdrawn:        a.IsWithdrawn(),
	}
}

// ----- Recommendations -----

type preferencesResponse struct {
	Gender        string   `json:"gender,omitempty"`
	AgeMin        int      `json:"ageMin,omitempty"`
	AgeMax        int      `json:"ageMax,omitempty"`
	LifestyleTags []string `json:"lifestyleTags"`
	MaxRoommates  int      `json:"maxRoommates,omitempty"`
}

type announcementResponse struct {
	ID                  uuid.UUID           `json:"id"`
	PosterID            uuid.UUID           `json:"posterId"`
	Title               string              `json:"title"`
	MonthlyRent         float64             `json:"monthlyRent"`
	Rooms               int                 `json:"rooms"`
	MoveInDate          time.Time           `json:"moveInDate"`
	LeaseDurationMonths int                 `json:"leaseDurationMonths"`
	Preferences         preferencesResponse `json:"preferences"`
	Status              string              `json:"status"`
	ApplicationCount    int                 `json:"applicationCount"`
	CreatedAt           time.Time           `json:"createdAt"`
	ExpiresAt           *time.Time          `json:"expiresAt,omitempty"`
}

type announcementMatchResponse struct {
	Announcement announcementResponse `json:"announcement"`
	Score        compat.Score         `json:"score"`
	Tier         string               `json:"tier"`
}

type studentResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Institute      string    `json:"institute,omitempty"`
	FieldOfStudy   string    `json:"fieldOfStudy,omitempty"`
	EducationLevel string    `json:"educationLevel,omitempty"`
	Age            int       `json:"age,omitempty"`
}

type studentMatchResponse struct {
	Student studentResponse `json:"student"`
	Score   compat.Score    `json:"score"`
	Tier    string          `json:"tier"`
	Reason  string          `json:"reason"`
}

func toAnnouncementResponse(a *domain.RoommateAnnouncement) announcementResponse {
	tags := a.Preferences.LifestyleTags
	if tags == nil {
		tags = []string{}
	}
	return announcementResponse{
		ID:                  a.ID,
		PosterID:            a.PosterID,
		Title:               a.Title,
		MonthlyRent:         a.Terms.MonthlyRent,
		Rooms:               a.Terms.Rooms,
		MoveInDate:          a.Terms.MoveInDate,
		LeaseDurationMonths: a.Terms.LeaseDurationMonths,
		Preferences: preferencesResponse{
			Gender:        a.Preferences.Gender,
			AgeMin:        a.Preferences.AgeMin,
			AgeMax:        a.Preferences.AgeMax,
			LifestyleTags: tags,
			MaxRoommates:  a.Preferences.MaxRoommates,
		},
		Status:           string(a.Status),
		ApplicationCount: a.ApplicationCount,
		CreatedAt:        a.CreatedAt,
		ExpiresAt:        a.ExpiresAt,
	}
}

func toAnnouncementMatches(in []recommendation.AnnouncementMatch) []announcementMatchResponse {
	out := make([]announcementMatchResponse, 0, len(in))
	for i := range in {
		out = append(out, announcementMatchResponse{
			Announcement: toAnnouncementResponse(&in[i].Announcement),
			Score:        in[i].Score,
			Tier:         string(in[i].Tier),
		})
	}
	return out
}

func toStudentMatches(in []recommendation.StudentMatch) []studentMatchResponse {
	out := make([]studentMatchResponse, 0, len(in))
	for i := range in {
		u := &in[i].User
		out = append(out, studentMatchResponse{
			Student: studentResponse{
				ID:             u.ID,
				Name:           u.Name,
				Institute:      u.Profile.Institute,
				FieldOfStudy:   u.Profile.FieldOfStudy,
				EducationLevel: string(u.Profile.EducationLevel),
				Age:            u.Profile.Age,
			},
			Score:  in[i].Score,
			Tier:   string(in[i].Tier),
			Reason: in[i].Reason,
		})
	}
	return out
}
