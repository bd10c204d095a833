package store

import (
	"context"
	"fmt"
	"time"
)

// Visitor is one tracked page view. The IP is stored only as a salted hash.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// DetailStat counts how often an experience detail was opened.
type DetailStat struct {
	Type       string    `json:"type"`
	Views      int64     `json:"views"`
	LastViewed time.Time `json:"last_viewed"`
}

type Stats struct {
	TotalVisitors    int64        `json:"total_visitors"`
	UniqueVisitors   int64        `json:"unique_visitors"`
	TotalDetailViews int64        `json:"total_detail_views"`
	VisitorsToday    int64        `json:"visitors_today"`
	VisitorsThisWeek int64        `json:"visitors_this_week"`
	TopDetails       []DetailStat `json:"top_details"`
	RecentVisitors   []Visitor    `json:"recent_visitors"`
}

func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, at.Unix())
	if err != nil {
		return fmt.Errorf("store: record visit: %w", err)
	}
	return nil
}

func (s *Store) RecordDetailView(ctx context.Context, typ string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO detail_views (type, views, last_viewed) VALUES (?, 1, ?)
		ON CONFLICT(type) DO UPDATE SET views = views + 1, last_viewed = excluded.last_viewed
	`, typ, at.Unix())
	if err != nil {
		return fmt.Errorf("store: record detail view %q: %w", typ, err)
	}
	return nil
}

// Visitors returns the most recent visits, newest first.
func (s *Store) Visitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query visitors: %w", err)
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("store: scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Details returns detail view counters, most viewed first.
func (s *Store) Details(ctx context.Context, limit int) ([]DetailStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, views, last_viewed
		FROM detail_views
		ORDER BY views DESC, last_viewed DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query detail views: %w", err)
	}
	defer rows.Close()

	var out []DetailStat
	for rows.Next() {
		var d DetailStat
		var ts int64
		if err := rows.Scan(&d.Type, &d.Views, &ts); err != nil {
			return nil, fmt.Errorf("store: scan detail view: %w", err)
		}
		d.LastViewed = time.Unix(ts, 0).UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}

// Stats summarizes traffic as seen at now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	st := &Stats{}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	week := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&st.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&st.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&st.TotalDetailViews, `SELECT COALESCE(SUM(views), 0) FROM detail_views`, nil},
		{&st.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{today.Unix()}},
		{&st.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{week.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("store: stats: %w", err)
		}
	}

	var err error
	if st.TopDetails, err = s.Details(ctx, 10); err != nil {
		return nil, err
	}
	if st.RecentVisitors, err = s.Visitors(ctx, 50); err != nil {
		return nil, err
	}
	return st, nil
}

// Cleanup deletes visits older than cutoff and returns how many went.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("store: cleanup: %w", err)
	}
	return res.RowsAffected()
}

// DeleteDetail drops the counter of typ and reports whether it existed.
func (s *Store) DeleteDetail(ctx context.Context, typ string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM detail_views WHERE type = ?`, typ)
	if err != nil {
		return false, fmt.Errorf("store: delete detail view %q: %w", typ, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
