package workspace

import (
	"fmt"
	"time"
)

// DueCategory classifies a task's due date relative to a reference day
type DueCategory string

const (
	DueOverdue  DueCategory = "overdue"
	DueToday    DueCategory = "due-today"
	DueTomorrow DueCategory = "due-tomorrow"
	DueThisWeek DueCategory = "due-this-week"
	DueLater    DueCategory = "due-later"
	DueNone     DueCategory = "none"
)

// DueColorTier maps a due category to a display severity
type DueColorTier string

const (
	DueTierRed     DueColorTier = "red"
	DueTierOrange  DueColorTier = "orange"
	DueTierGreen   DueColorTier = "green"
	DueTierNeutral DueColorTier = "neutral"
)

// DueClassification pairs a category with its display label and color tier
type DueClassification struct {
	Category DueCategory  `json:"category"`
	Label    string       `json:"label"`
	Tier     DueColorTier `json:"tier"`
}

// truncateToDay drops the time-of-day component in the given location
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDay reports whether two instants fall on the same calendar day
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ClassifyDueDate classifies a due date against a reference "now". It is total:
// every input, including a nil due date, yields a classification. Both sides
// are truncated to midnight so comparison happens at calendar-day granularity.
func ClassifyDueDate(dueDate *time.Time, now time.Time) DueClassification {
	if dueDate == nil {
		return DueClassification{Category: DueNone, Label: "No due date", Tier: DueTierNeutral}
	}

	today := truncateToDay(now)
	due := truncateToDay(dueDate.In(now.Location()))

	switch {
	case due.Before(today):
		return DueClassification{
			Category: DueOverdue,
			Label:    fmt.Sprintf("Overdue - %s", due.Format("Jan 2")),
			Tier:     DueTierRed,
		}
	case due.Equal(today):
		return DueClassification{Category: DueToday, Label: "Due Today", Tier: DueTierOrange}
	case due.Equal(today.AddDate(0, 0, 1)):
		return DueClassification{Category: DueTomorrow, Label: "Due Tomorrow", Tier: DueTierOrange}
	case due.Before(today.AddDate(0, 0, 7)):
		return DueClassification{
			Category: DueThisWeek,
			Label:    fmt.Sprintf("Due %s", due.Format("Monday")),
			Tier:     DueTierGreen,
		}
	default:
		return DueClassification{
			Category: DueLater,
			Label:    fmt.Sprintf("Due %s", due.Format("Jan 2")),
			Tier:     DueTierNeutral,
		}
	}
}
