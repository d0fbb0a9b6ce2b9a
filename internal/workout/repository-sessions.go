package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListSessions retrieves all workout sessions with a session date on or after
// sinceDate, most recent first.
func (r *sqliteRepository) ListSessions(ctx context.Context, sinceDate time.Time) (_ []Session, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, session_date, notes, started_at, completed_at
		FROM workout_sessions
		WHERE session_date >= ?
		ORDER BY session_date DESC`,
		sinceDate.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query workout sessions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sessions []Session
	for rows.Next() {
		var session Session
		if session, err = scanSession(rows); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}

	for i := range sessions {
		if sessions[i].Exercises, err = r.fetchExerciseLogs(ctx, sessions[i].ID); err != nil {
			return nil, fmt.Errorf("fetch exercise logs for session %s: %w", sessions[i].ID, err)
		}
	}

	return sessions, nil
}

// GetSession retrieves the workout session for a specific date. Returns
// ErrNotFound when no session exists for that date.
func (r *sqliteRepository) GetSession(ctx context.Context, date time.Time) (Session, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, session_date, notes, started_at, completed_at
		FROM workout_sessions
		WHERE session_date = ?`,
		date.Format(dateFormat))

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}

	if session.Exercises, err = r.fetchExerciseLogs(ctx, session.ID); err != nil {
		return Session{}, fmt.Errorf("fetch exercise logs: %w", err)
	}
	return session, nil
}

// CreateSession persists a new session and its exercise logs, assigning IDs
// to the session and every log. The stored session is returned.
func (r *sqliteRepository) CreateSession(ctx context.Context, session Session) (Session, error) {
	session.ID = uuid.New().String()
	for i := range session.Exercises {
		session.Exercises[i].ID = uuid.New().String()
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO workout_sessions (id, session_date, notes, started_at, completed_at)
			VALUES (?, ?, ?, ?, ?)`,
			session.ID,
			session.Date.Format(dateFormat),
			session.Notes,
			formatTimestamp(session.StartedAt),
			formatTimestamp(session.CompletedAt),
		)
		if err != nil {
			return fmt.Errorf("insert workout session: %w", err)
		}
		return insertExerciseLogs(ctx, tx, session.ID, session.Exercises)
	})
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// UpdateSession loads the session for the date, applies fn and stores the
// result. The exercise logs are replaced wholesale so reordering, adding and
// removing logs all go through the same path.
func (r *sqliteRepository) UpdateSession(
	ctx context.Context,
	date time.Time,
	fn func(session *Session) error,
) (Session, error) {
	session, err := r.GetSession(ctx, date)
	if err != nil {
		return Session{}, err
	}

	if err = fn(&session); err != nil {
		return Session{}, err
	}
	for i := range session.Exercises {
		if session.Exercises[i].ID == "" {
			session.Exercises[i].ID = uuid.New().String()
		}
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		_, txErr := tx.ExecContext(ctx, `
			UPDATE workout_sessions
			SET notes = ?, started_at = ?, completed_at = ?
			WHERE id = ?`,
			session.Notes,
			formatTimestamp(session.StartedAt),
			formatTimestamp(session.CompletedAt),
			session.ID,
		)
		if txErr != nil {
			return fmt.Errorf("update workout session: %w", txErr)
		}

		// ON DELETE CASCADE clears the logs' sets as well.
		if _, txErr = tx.ExecContext(ctx,
			`DELETE FROM exercise_logs WHERE session_id = ?`, session.ID); txErr != nil {
			return fmt.Errorf("delete exercise logs: %w", txErr)
		}
		return insertExerciseLogs(ctx, tx, session.ID, session.Exercises)
	})
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

func insertExerciseLogs(ctx context.Context, tx *sql.Tx, sessionID string, logs []ExerciseLog) error {
	for position, log := range logs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO exercise_logs (id, session_id, position, exercise_name, notes)
			VALUES (?, ?, ?, ?, ?)`,
			log.ID, sessionID, position, log.ExerciseName, log.Notes)
		if err != nil {
			return fmt.Errorf("insert exercise log: %w", err)
		}

		for setNumber, set := range log.Sets {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO exercise_sets (log_id, set_number, weight_lb, reps, completed)
				VALUES (?, ?, ?, ?, ?)`,
				log.ID, setNumber+1, set.WeightLb, set.Reps, set.Completed)
			if err != nil {
				return fmt.Errorf("insert exercise set: %w", err)
			}
		}
	}
	return nil
}

// fetchExerciseLogs loads a session's exercise logs with their sets, in
// position order.
func (r *sqliteRepository) fetchExerciseLogs(ctx context.Context, sessionID string) (_ []ExerciseLog, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT l.id, l.exercise_name, l.notes,
		       s.weight_lb, s.reps, s.completed
		FROM exercise_logs l
		LEFT JOIN exercise_sets s ON s.log_id = l.id
		WHERE l.session_id = ?
		ORDER BY l.position, s.set_number`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var logs []ExerciseLog
	var current *ExerciseLog
	for rows.Next() {
		var (
			id, name, notes string
			weightLb        sql.NullFloat64
			reps            sql.NullInt32
			completed       sql.NullBool
		)
		if err = rows.Scan(&id, &name, &notes, &weightLb, &reps, &completed); err != nil {
			return nil, fmt.Errorf("scan exercise log row: %w", err)
		}

		if current == nil || current.ID != id {
			if current != nil {
				logs = append(logs, *current)
			}
			current = &ExerciseLog{ID: id, ExerciseName: name, Notes: notes}
		}
		if weightLb.Valid {
			current.Sets = append(current.Sets, Set{
				WeightLb:  weightLb.Float64,
				Reps:      int(reps.Int32),
				Completed: completed.Bool,
			})
		}
	}
	if current != nil {
		logs = append(logs, *current)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise log rows: %w", err)
	}

	return logs, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var (
		session        Session
		dateStr        string
		startedAtStr   sql.NullString
		completedAtStr sql.NullString
	)
	err := row.Scan(&session.ID, &dateStr, &session.Notes, &startedAtStr, &completedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("scan workout session: %w", err)
	}

	if session.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return Session{}, fmt.Errorf("parse session date: %w", err)
	}
	if session.StartedAt, err = parseTimestamp(startedAtStr); err != nil {
		return Session{}, fmt.Errorf("parse started_at: %w", err)
	}
	if session.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
		return Session{}, fmt.Errorf("parse completed_at: %w", err)
	}
	return session, nil
}
