package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/14kear/movie-voting/internal/entity"
	"github.com/14kear/movie-voting/internal/repo"
)

func (s *Storage) SeedOptions(ctx context.Context, options []string) error {
	const op = "storage.sqlstore.SeedOptions"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tallies (choice, votes_count) VALUES ($1, 0) ON CONFLICT (choice) DO NOTHING`

	for _, option := range options {
		if _, err := tx.ExecContext(ctx, query, option); err != nil {
			return fmt.Errorf("%s: %s: %w", op, option, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// SaveVote appends the vote and increments its tally in one transaction.
func (s *Storage) SaveVote(ctx context.Context, vote entity.Vote) (int64, error) {
	const op = "storage.sqlstore.SaveVote"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO votes (choice, created_at, ip_address) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err = tx.QueryRowContext(ctx, insert, vote.Option, vote.CreatedAt, nullString(vote.IPAddress)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: insert: %w", op, err)
	}

	increment := `UPDATE tallies SET votes_count = votes_count + 1 WHERE choice = $1`

	res, err := tx.ExecContext(ctx, increment, vote.Option)
	if err != nil {
		return 0, fmt.Errorf("%s: increment: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return id, nil
}

// Tallies returns every tally ordered by count (ties by option name) together with
// the number of recorded votes, both read from one snapshot.
func (s *Storage) Tallies(ctx context.Context) ([]entity.Tally, int64, error) {
	const op = "storage.sqlstore.Tallies"

	tx, err := s.db.BeginTx(ctx, s.snapshotTxOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	tallies, err := queryTallies(ctx, tx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return tallies, total, nil
}

func queryTallies(ctx context.Context, tx *sql.Tx) ([]entity.Tally, error) {
	query := `SELECT choice, votes_count FROM tallies ORDER BY votes_count DESC, choice ASC`

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tallies []entity.Tally
	for rows.Next() {
		var tally entity.Tally
		if err := rows.Scan(&tally.Option, &tally.Count); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tallies = append(tallies, tally)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return tallies, nil
}

func (s *Storage) RecentVotes(ctx context.Context, limit int) ([]entity.Vote, error) {
	const op = "storage.sqlstore.RecentVotes"

	query := `SELECT id, choice, created_at, ip_address FROM votes ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var votes []entity.Vote
	for rows.Next() {
		var (
			vote entity.Vote
			ip   sql.NullString
		)
		if err := rows.Scan(&vote.ID, &vote.Option, &vote.CreatedAt, &ip); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		vote.IPAddress = ip.String
		votes = append(votes, vote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return votes, nil
}

// ResetVotes deletes every vote and zeroes every tally in one transaction.
func (s *Storage) ResetVotes(ctx context.Context) error {
	const op = "storage.sqlstore.ResetVotes"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes`); err != nil {
		return fmt.Errorf("%s: delete votes: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE tallies SET votes_count = 0`); err != nil {
		return fmt.Errorf("%s: zero tallies: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
