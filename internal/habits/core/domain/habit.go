package domain

import (
	"errors"
	"time"
)

var ErrHabitNotFound = errors.New("habit not found")

// Habit is a cue -> response -> reward loop the user wants to keep.
type Habit struct {
	ID          int64
	UserID      string
	Name        string
	Cue         string
	Response    string
	Reward      string
	BeliefScore *int // latest belief score, nil until first completion
	CreatedAt   time.Time
}

// Completion is a single "done" mark with the belief score given at that time.
type Completion struct {
	ID          int64
	UserID      string
	HabitID     int64
	BeliefScore int
	CompletedAt time.Time
}
