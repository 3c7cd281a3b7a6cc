// Package status derives the presentation state of a competition from
// the current instant and its start and end instants.
//
// Every view of a competition (cards, countdowns, badges, the live hub)
// goes through Derive so that they agree on the same taxonomy and on the
// boundary instants: a competition is live at exactly startsAt and ended
// at exactly endsAt.
package status

import (
	"fmt"
	"time"
)

// Status is the lifecycle position of a competition
type Status string

const (
	Upcoming Status = "upcoming"
	Live     Status = "live"
	Ended    Status = "ended"
)

// All lists the statuses in lifecycle order
var All = []Status{Upcoming, Live, Ended}

// Rank returns the lifecycle position (0, 1, 2); unknown statuses rank -1.
func (s Status) Rank() int {
	switch s {
	case Upcoming:
		return 0
	case Live:
		return 1
	case Ended:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Parse converts a string into a Status
func Parse(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// State is the derived view of a competition at one instant
type State struct {
	Status    Status        `json:"status"`
	Target    time.Time     `json:"countdown_target"`
	Remaining time.Duration `json:"-"`
}

// Derive computes the state over the half-open intervals
// [-inf, startsAt) upcoming, [startsAt, endsAt) live, [endsAt, +inf) ended.
//
// When endsAt precedes startsAt the live interval is empty: the
// competition goes straight from upcoming to ended at startsAt.
func Derive(now, startsAt, endsAt time.Time) State {
	switch {
	case now.Before(startsAt):
		return State{Status: Upcoming, Target: startsAt, Remaining: clamp(startsAt.Sub(now))}
	case now.Before(endsAt):
		return State{Status: Live, Target: endsAt, Remaining: clamp(endsAt.Sub(now))}
	default:
		return State{Status: Ended, Target: endsAt, Remaining: 0}
	}
}

// Joinable reports whether new entries are accepted
func (s State) Joinable() bool {
	return s.Status == Upcoming
}

// Parts returns the remaining time split into display units
func (s State) Parts() Parts {
	return Split(s.Remaining)
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// Parts is a duration broken into whole days, hours, minutes and seconds
type Parts struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	TotalSeconds int64 `json:"total_seconds"`
}

// Split truncates d to whole seconds and breaks it down.
// Negative durations are treated as zero.
func Split(d time.Duration) Parts {
	total := int64(clamp(d) / time.Second)
	return Parts{
		Days:         total / 86400,
		Hours:        (total % 86400) / 3600,
		Minutes:      (total % 3600) / 60,
		Seconds:      total % 60,
		TotalSeconds: total,
	}
}

// BadgeUnit is the unit shown on the duration badge
type BadgeUnit string

const (
	BadgeHours BadgeUnit = "H"
	BadgeDays  BadgeUnit = "D"
)

// Badge summarises how long a competition runs
type Badge struct {
	Value  int64     `json:"value"`
	Unit   BadgeUnit `json:"unit"`
	Circle bool      `json:"circle"`
}

// DurationBadge rounds the run time up to whole hours. Runs shorter than a
// day render as a circular hour badge, longer ones as a day badge with the
// day count rounded up.
func DurationBadge(startsAt, endsAt time.Time) Badge {
	d := clamp(endsAt.Sub(startsAt))
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	if hours < 24 {
		return Badge{Value: hours, Unit: BadgeHours, Circle: true}
	}
	days := hours / 24
	if hours%24 != 0 {
		days++
	}
	return Badge{Value: days, Unit: BadgeDays}
}
