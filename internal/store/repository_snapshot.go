package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/models"
)

// snapshotRepository is the SQLite-backed implementation of
// [SnapshotRepository]. Each record is stored as its API JSON, so profile
// fields the client does not model survive a restart.
type snapshotRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

// NewSnapshotRepository constructs a [SnapshotRepository] on top of db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SaveUsers implements [SnapshotRepository].
func (r *snapshotRepository) SaveUsers(ctx context.Context, adminID string, users []models.User) error {
	rows := make([]cacheRow, 0, len(users))
	for _, u := range users {
		payload, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("%w (USER_ID=%s): %w", ErrEncodingRecord, u.UserID, err)
		}
		rows = append(rows, cacheRow{userID: u.UserID.String(), payload: payload})
	}

	return r.replaceCollection(ctx, adminID, collectionUsers, rows)
}

// LoadUsers implements [SnapshotRepository].
func (r *snapshotRepository) LoadUsers(ctx context.Context, adminID string) ([]models.User, error) {
	payloads, err := r.loadCollection(ctx, adminID, collectionUsers)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(payloads))
	for _, p := range payloads {
		var u models.User
		if err := json.Unmarshal(p, &u); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}
		users = append(users, u)
	}
	return users, nil
}

// SaveTeachers implements [SnapshotRepository].
func (r *snapshotRepository) SaveTeachers(ctx context.Context, adminID string, teachers []models.Teacher) error {
	rows := make([]cacheRow, 0, len(teachers))
	for _, t := range teachers {
		payload, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("%w (USER_ID=%s): %w", ErrEncodingRecord, t.UserID, err)
		}
		rows = append(rows, cacheRow{userID: t.UserID.String(), payload: payload})
	}

	return r.replaceCollection(ctx, adminID, collectionTeachers, rows)
}

// LoadTeachers implements [SnapshotRepository].
func (r *snapshotRepository) LoadTeachers(ctx context.Context, adminID string) ([]models.Teacher, error) {
	payloads, err := r.loadCollection(ctx, adminID, collectionTeachers)
	if err != nil {
		return nil, err
	}

	teachers := make([]models.Teacher, 0, len(payloads))
	for _, p := range payloads {
		var t models.Teacher
		if err := json.Unmarshal(p, &t); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}

// replaceCollection deletes the cached collection and inserts rows inside a
// single transaction.
func (r *snapshotRepository) replaceCollection(ctx context.Context, adminID, collection string, rows []cacheRow) (err error) {
	log := r.logger.With().
		Str("func", "snapshotRepository.replaceCollection").
		Str("admin_id", adminID).
		Str("collection", collection).
		Logger()

	deleteQuery, deleteArgs, err := buildDeleteCollectionQuery(adminID, collection)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Msg("failed to delete cached collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	savedAt := r.now()
	for start := 0; start < len(rows); start += insertBatchRows {
		end := min(start+insertBatchRows, len(rows))

		insertQuery, insertArgs, buildErr := buildInsertCollectionQuery(adminID, collection, rows[start:end], start, savedAt)
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return err
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Int("rows", len(rows)).Int("batch_start", start).Msg("failed to insert cached collection")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Int("rows", len(rows)).Msg("cached collection saved")
	return nil
}

func (r *snapshotRepository) loadCollection(ctx context.Context, adminID, collection string) ([][]byte, error) {
	log := r.logger.With().
		Str("func", "snapshotRepository.loadCollection").
		Str("admin_id", adminID).
		Str("collection", collection).
		Logger()

	query, args, err := buildSelectCollectionQuery(adminID, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to query cached collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payloads := make([][]byte, 0, 64)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			log.Err(err).Msg("failed to scan cached row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Msg("error iterating cached rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payloads, nil
}
