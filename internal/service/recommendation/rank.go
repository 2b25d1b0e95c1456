package recommendation

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// compareRanked orders by overall score descending, then creation time
// descending, then id ascending so ties are stable across calls.
func compareRanked(aScore, bScore float64, aCreated, bCreated int64, aID, bID uuid.UUID) int {
	if c := cmp.Compare(bScore, aScore); c != 0 {
		return c
	}
	if c := cmp.Compare(bCreated, aCreated); c != 0 {
		return c
	}
	return bytes.Compare(aID[:], bID[:])
}

func sortAnnouncementMatches(ms []AnnouncementMatch) {
	slices.SortFunc(ms, func(a, b AnnouncementMatch) int {
		return compareRanked(
			a.Score.Overall, b.Score.Overall,
			a.Announcement.CreatedAt.UnixNano(), b.Announcement.CreatedAt.UnixNano(),
			a.Announcement.ID, b.Announcement.ID,
		)
	})
}

func sortStudentMatches(ms []StudentMatch) {
	slices.SortFunc(ms, func(a, b StudentMatch) int {
		return compareRanked(
			a.Score.Overall, b.Score.Overall,
			a.User.CreatedAt.UnixNano(), b.User.CreatedAt.UnixNano(),
			a.User.ID, b.User.ID,
		)
	})
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
