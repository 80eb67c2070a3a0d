package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/plantquiz/internal/quiz"
)

const resultsTable = "results"

var sqlite = entsql.Dialect(dialect.SQLite)

// ResultRecord is one completed quiz. Only outcomes are journaled, never
// in-progress state.
type ResultRecord struct {
	ID          int64
	SessionID   string
	Category    quiz.Category
	Tally       quiz.Tally
	StartedAt   time.Time
	CompletedAt time.Time
}

// ResultRepo is the result journal.
type ResultRepo interface {
	// Append stores a completed result.
	Append(ctx context.Context, rec ResultRecord) error

	// Recent returns up to limit results, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]ResultRecord, error)

	// Counts returns how often each category was the result.
	Counts(ctx context.Context) (map[quiz.Category]int, error)

	// Clear deletes every result and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

type resultRepo struct {
	drv *entsql.Driver
}

func (r *resultRepo) Append(ctx context.Context, rec ResultRecord) error {
	if !rec.Category.Valid() {
		return fmt.Errorf("append result: %w", quiz.ErrInvalidCategory)
	}
	tally, err := json.Marshal(rec.Tally.Map())
	if err != nil {
		return fmt.Errorf("encode tally: %w", err)
	}

	query, args := sqlite.Insert(resultsTable).
		Columns("session_id", "category", "tally", "started_at", "completed_at").
		Values(rec.SessionID, rec.Category.String(), string(tally),
			rec.StartedAt.UnixMilli(), rec.CompletedAt.UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]ResultRecord, error) {
	sel := sqlite.Select("id", "session_id", "category", "tally", "started_at", "completed_at").
		From(sqlite.Table(resultsTable)).
		OrderBy(entsql.Desc("completed_at"), entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var (
			rec                ResultRecord
			category, tally    string
			started, completed int64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &category, &tally, &started, &completed); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		var err error
		if rec.Category, err = quiz.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("result %d: %w", rec.ID, err)
		}
		if rec.Tally, err = decodeTally(tally); err != nil {
			return nil, fmt.Errorf("result %d: %w", rec.ID, err)
		}
		rec.StartedAt = time.UnixMilli(started).UTC()
		rec.CompletedAt = time.UnixMilli(completed).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *resultRepo) Counts(ctx context.Context) (map[quiz.Category]int, error) {
	query, args := sqlite.Select("category", entsql.Count("*")).
		From(sqlite.Table(resultsTable)).
		GroupBy("category").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("count results: %w", err)
	}
	defer rows.Close()

	counts := make(map[quiz.Category]int, quiz.NumCategories)
	for _, c := range quiz.AllCategories() {
		counts[c] = 0
	}
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		c, err := quiz.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		counts[c] = n
	}
	return counts, rows.Err()
}

func (r *resultRepo) Clear(ctx context.Context) (int64, error) {
	query, args := sqlite.Delete(resultsTable).Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}
	return res.RowsAffected()
}

func decodeTally(raw string) (quiz.Tally, error) {
	var m map[string]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return quiz.Tally{}, fmt.Errorf("decode tally: %w", err)
	}
	var t quiz.Tally
	for name, n := range m {
		c, err := quiz.ParseCategory(name)
		if err != nil {
			return quiz.Tally{}, err
		}
		t[c] = n
	}
	return t, nil
}
