// Package journal implements the journal entry repository using PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{
	"id", "user_id", "transcript", "summary", "emotion", "emotion_score",
	"scene", "character_message", "image_url", "audio_duration", "created_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	query, args, err := psql.
		Select(entryColumns...).
		From("journal_entries").
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entryID)
	}

	return e, nil
}

// List returns entries ordered by created_at DESC with pagination.
// Returns an empty slice if the user has no entries.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error) {
	query, args, err := psql.
		Select(entryColumns...).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	return r.queryEntries(ctx, query, args)
}

// GetLatestInRange returns the newest entry with from <= created_at < to.
// Returns domain.ErrNotFound when the range is empty.
func (r *Repo) GetLatestInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.JournalEntry, error) {
	query, args, err := psql.
		Select(entryColumns...).
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build range query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return e, nil
}

const listCreatedAtSQL = `SELECT created_at FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC`

// ListCreatedAt returns the creation time of every entry of the user, newest first.
func (r *Repo) ListCreatedAt(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCreatedAtSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries created_at: %w", err)
	}

	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("scan journal_entries created_at: %w", err)
	}

	return times, nil
}

// ListEmotionsSince returns emotion and creation time of entries created at
// or after since, oldest first.
func (r *Repo) ListEmotionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.EntryEmotion, error) {
	query, args, err := psql.
		Select("emotion", "created_at").
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build emotions query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries emotions: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EntryEmotion, error) {
		var e domain.EntryEmotion
		err := row.Scan(&e.Emotion, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal_entries emotions: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.JournalEntry.
func (r *Repo) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	query, args, err := psql.
		Insert("journal_entries").
		Columns(entryColumns...).
		Values(
			e.ID, e.UserID, e.Transcript, e.Summary, string(e.Emotion), e.EmotionScore,
			e.Scene, e.CharacterMessage, e.ImageURL, e.AudioDuration, e.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID)
	}

	return created, nil
}

const deleteEntrySQL = `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`

// Delete removes an entry. Returns domain.ErrNotFound if the entry
// does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEntrySQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, "journal_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryEntries(ctx context.Context, query string, args []any) ([]*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal_entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.JournalEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal_entries: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e       domain.JournalEntry
		emotion string
		score   int16
	)

	err := row.Scan(
		&e.ID, &e.UserID, &e.Transcript, &e.Summary, &emotion, &score,
		&e.Scene, &e.CharacterMessage, &e.ImageURL, &e.AudioDuration, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Emotion = domain.Emotion(emotion)
	e.EmotionScore = int(score)

	return &e, nil
}
