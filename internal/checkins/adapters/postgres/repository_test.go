package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"habit-insights-service/internal/checkins/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool { return f.i < len(f.rows) }

func (f *fakeRowScanner) Scan(dest ...any) error {
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = row[i].(int64)
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		case *sql.NullString:
			if row[i] == nil {
				*d = sql.NullString{}
			} else {
				*d = sql.NullString{String: row[i].(string), Valid: true}
			}
		case *sql.NullInt64:
			if row[i] == nil {
				*d = sql.NullInt64{}
			} else {
				*d = sql.NullInt64{Int64: row[i].(int64), Valid: true}
			}
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error   { return f.err }
func (f *fakeRowScanner) Close() error { return nil }

type fakeDB struct {
	QueryFn func(ctx context.Context, query string, args ...any) (RowScanner, error)

	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func intPtr(v int) *int { return &v }

var (
	logDate   = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	updatedAt = time.Date(2024, 3, 10, 21, 15, 0, 0, time.UTC)
)

func checkInRow(id int64) []any {
	return []any{id, "user-1", logDate, int64(420), "good", nil, nil, int64(3), nil, updatedAt}
}

func TestCheckInRepository_Upsert(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{checkInRow(9)}}, nil
		},
	}

	saved, err := NewCheckInRepository(db).UpsertCheckIn(context.Background(), domain.CheckIn{
		UserID:               "user-1",
		LogDate:              logDate,
		SleepDurationMinutes: intPtr(420),
		SleepQuality:         "good",
		StressLevel:          intPtr(3),
	})
	require.NoError(t, err)

	assert.Contains(t, db.lastQuery, "ON CONFLICT (user_id, log_date) DO UPDATE")
	assert.Equal(t, []any{"user-1", "2024-03-10", 420, "good", nil, nil, 3, nil}, db.lastArgs)

	assert.Equal(t, int64(9), saved.ID)
	assert.Equal(t, logDate, saved.LogDate)
	assert.Equal(t, 420, *saved.SleepDurationMinutes)
	assert.Nil(t, saved.ExerciseDurationMinutes)
	assert.Equal(t, "", saved.MoodStatus)
	assert.Equal(t, updatedAt, saved.UpdatedAt)
}

func TestCheckInRepository_Get(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{checkInRow(4)}}, nil
		},
	}

	got, err := NewCheckInRepository(db).GetCheckIn(context.Background(), "user-1", logDate)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, []any{"user-1", "2024-03-10"}, db.lastArgs)
}

func TestCheckInRepository_Get_NotFound(t *testing.T) {
	_, err := NewCheckInRepository(&fakeDB{}).GetCheckIn(context.Background(), "user-1", logDate)
	assert.ErrorIs(t, err, domain.ErrCheckInNotFound)
}

func TestCheckInRepository_List(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{checkInRow(2), checkInRow(1)}}, nil
		},
	}

	got, err := NewCheckInRepository(db).ListCheckIns(context.Background(), "user-1", 14)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, []any{"user-1", 14}, db.lastArgs)
	assert.Contains(t, db.lastQuery, "ORDER BY log_date DESC")
}

func TestCheckInRepository_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("connection reset")
		},
	}

	_, err := NewCheckInRepository(db).ListCheckIns(context.Background(), "user-1", 14)
	assert.ErrorContains(t, err, "list check-ins")
}
