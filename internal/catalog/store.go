// Package catalog stores named cron expressions.
//
// Entries are validated through the converter on the way in and kept in
// canonical form, so every stored expression decodes back to the value it
// was added with regardless of the converter options in effect later.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/solatis/cronconv/internal/core/db"
	"github.com/solatis/cronconv/internal/cronexpr"
	"github.com/solatis/cronconv/internal/types"
)

// Store is the schedule catalog.
type Store struct {
	queries   *db.Queries
	converter *cronexpr.Converter
	canonical *cronexpr.Converter
	now       func() time.Time
}

// NewStore creates a catalog over migrated queries. Submitted text is parsed
// with converter; stored text is written and read in canonical numeric form.
func NewStore(queries *db.Queries, converter *cronexpr.Converter) *Store {
	return &Store{
		queries:   queries,
		converter: converter,
		canonical: cronexpr.NewConverter(cronexpr.Options{
			AllowEmpty: cronexpr.AllowEmptyNever,
			Shortcuts:  cronexpr.AllShortcuts(),
		}),
		now: time.Now,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", types.ErrInvalidScheduleName)
	}
	if utf8.RuneCountInString(name) > types.MaxScheduleNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", types.ErrInvalidScheduleName, types.MaxScheduleNameLength)
	}
	return name, nil
}

// Add parses text and stores it under name. Empty text is always rejected.
func (s *Store) Add(ctx context.Context, name, text string) (*types.Schedule, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if len(text) > types.MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression exceeds %d characters", types.ErrInvalidExpression, types.MaxExpressionLength)
	}

	e, err := s.converter.Parse(text)
	if err != nil {
		return nil, err
	}
	if e.IsZero() {
		return nil, fmt.Errorf("%w: empty expression", types.ErrInvalidExpression)
	}
	e = e.Canonical()

	var count int
	if err := s.queries.Get(ctx, "count-schedules-by-name", &count, name); err != nil {
		return nil, fmt.Errorf("failed to check schedule %q: %w", name, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrScheduleExists, name)
	}

	schedule := &types.Schedule{
		ID:         types.NewScheduleID(),
		Name:       name,
		Source:     text,
		Expression: s.canonical.Render(e),
		Period:     e.Period().String(),
		CreatedAt:  s.now().UTC().Truncate(time.Second),
	}

	_, err = s.queries.Exec(ctx, "insert-schedule",
		schedule.ID, schedule.Name, schedule.Source, schedule.Expression, schedule.Period, schedule.CreatedAt)
	if err != nil {
		// A concurrent Add can pass the count check; the unique index decides.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrScheduleExists, name)
		}
		return nil, fmt.Errorf("failed to insert schedule %q: %w", name, err)
	}

	return schedule, nil
}

// Get returns the schedule stored under name.
func (s *Store) Get(ctx context.Context, name string) (*types.Schedule, error) {
	var schedule types.Schedule
	err := s.queries.Get(ctx, "get-schedule-by-name", &schedule, strings.TrimSpace(name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", types.ErrScheduleNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule %q: %w", name, err)
	}
	return &schedule, nil
}

// List returns every schedule ordered by name.
func (s *Store) List(ctx context.Context) ([]types.Schedule, error) {
	schedules := []types.Schedule{}
	if err := s.queries.Select(ctx, "list-schedules", &schedules); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// ListByPeriod returns the schedules of one period ordered by name.
func (s *Store) ListByPeriod(ctx context.Context, period cronexpr.Period) ([]types.Schedule, error) {
	schedules := []types.Schedule{}
	if err := s.queries.Select(ctx, "list-schedules-by-period", &schedules, period.String()); err != nil {
		return nil, fmt.Errorf("failed to list %s schedules: %w", period, err)
	}
	return schedules, nil
}

// Remove deletes the schedule stored under name.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.queries.Exec(ctx, "delete-schedule-by-name", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to remove schedule %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove schedule %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", types.ErrScheduleNotFound, name)
	}
	return nil
}

// Decode parses the stored canonical text back into an Expression.
func (s *Store) Decode(schedule *types.Schedule) (cronexpr.Expression, error) {
	e, err := s.canonical.Parse(schedule.Expression)
	if err != nil {
		return cronexpr.Expression{}, fmt.Errorf("schedule %q holds unreadable expression: %w", schedule.Name, err)
	}
	return e, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
