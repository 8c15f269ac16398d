package domain

import (
	"errors"
	"time"
)

var ErrCheckInNotFound = errors.New("check-in not found")

const (
	MaxMinutesPerDay = 24 * 60
	MinStressLevel   = 1
	MaxStressLevel   = 10
	MaxNotesLength   = 1000
)

// SleepQualities are the accepted sleep_quality values, best first.
var SleepQualities = []string{"excellent", "good", "average", "poor", "very_poor"}

// Moods are the accepted mood_status values.
var Moods = []string{"focused_calm", "relaxed_cheerful", "slightly_tired", "anxious_tense", "low", "restless"}

// CheckIn is one day of self-reported wellness signals. LogDate is a calendar
// date stored as midnight UTC.
type CheckIn struct {
	ID                      int64
	UserID                  string
	LogDate                 time.Time
	SleepDurationMinutes    *int
	SleepQuality            string
	ExerciseDurationMinutes *int
	MoodStatus              string
	StressLevel             *int
	Notes                   string
	UpdatedAt               time.Time
}

// HasSignal reports whether at least one wellness field is filled in.
func (c CheckIn) HasSignal() bool {
	return c.SleepDurationMinutes != nil ||
		c.ExerciseDurationMinutes != nil ||
		c.StressLevel != nil ||
		c.SleepQuality != "" ||
		c.MoodStatus != ""
}

func IsSleepQuality(s string) bool {
	return contains(SleepQualities, s)
}

func IsMood(s string) bool {
	return contains(Moods, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
