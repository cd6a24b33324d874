// Package user implements the User repository using PostgreSQL.
// A user row holds the profile, the daily usage counter and the streak cache.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, nickname, notification_time, daily_usage_count, daily_usage_date,
	streak_count, last_journal_date, created_at, updated_at`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

const getUserSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

const ensureUserSQL = `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

// Ensure creates an empty user row if none exists. Idempotent.
func (r *Repo) Ensure(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureUserSQL, id); err != nil {
		return postgres.MapError(err, "user", id)
	}

	return nil
}

// lockUserSQL creates the row if missing and, through the update branch,
// holds a row lock until the surrounding transaction ends.
const lockUserSQL = `
INSERT INTO users (id) VALUES ($1)
ON CONFLICT (id) DO UPDATE SET updated_at = users.updated_at
RETURNING id`

// Lock takes a row lock on the user for the rest of the transaction in ctx.
// Outside a transaction it only ensures the row exists.
func (r *Repo) Lock(ctx context.Context, id uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return r.Ensure(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var got uuid.UUID
	if err := q.QueryRow(ctx, lockUserSQL, id).Scan(&got); err != nil {
		return postgres.MapError(err, "user", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Usage counter
// ---------------------------------------------------------------------------

const getUsageSQL = `SELECT daily_usage_count, daily_usage_date FROM users WHERE id = $1`

// GetUsage returns the stored counter. A missing user has a zero counter.
func (r *Repo) GetUsage(ctx context.Context, id uuid.UUID) (domain.UsageCounter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		count int
		date  pgtype.Date
	)
	err := q.QueryRow(ctx, getUsageSQL, id).Scan(&count, &date)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UsageCounter{}, nil
	}
	if err != nil {
		return domain.UsageCounter{}, postgres.MapError(err, "user", id)
	}

	return domain.UsageCounter{Count: count, CountedOn: pgDateToPtr(date)}, nil
}

// incrementUsageSQL is the whole check-and-increment as one statement. The
// conflict branch only fires while the stored day differs from today or the
// count is below the limit; otherwise no row is returned.
const incrementUsageSQL = `
INSERT INTO users (id, daily_usage_count, daily_usage_date)
VALUES ($1, 1, $2)
ON CONFLICT (id) DO UPDATE
   SET daily_usage_count = CASE
           WHEN users.daily_usage_date IS NOT DISTINCT FROM EXCLUDED.daily_usage_date
           THEN users.daily_usage_count + 1
           ELSE 1
       END,
       daily_usage_date = EXCLUDED.daily_usage_date,
       updated_at       = now()
 WHERE users.daily_usage_date IS DISTINCT FROM EXCLUDED.daily_usage_date
    OR users.daily_usage_count < $3
RETURNING daily_usage_count`

// IncrementUsage atomically consumes one unit of today's quota.
// It returns the new count and true, or the unchanged stored count and false
// when the limit is already reached. limit must be positive.
func (r *Repo) IncrementUsage(ctx context.Context, id uuid.UUID, today domain.Date, limit int) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, incrementUsageSQL, id, dateToPg(today), limit).Scan(&count)
	if err == nil {
		return count, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, postgres.MapError(err, "user", id)
	}

	usage, err := r.GetUsage(ctx, id)
	if err != nil {
		return 0, false, err
	}
	return usage.Count, false, nil
}

// ---------------------------------------------------------------------------
// Streak cache
// ---------------------------------------------------------------------------

const getStreakSQL = `SELECT streak_count, last_journal_date FROM users WHERE id = $1`

// GetStreakCache returns the cached streak. A missing user has a zero cache.
func (r *Repo) GetStreakCache(ctx context.Context, id uuid.UUID) (domain.StreakCache, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		count int
		date  pgtype.Date
	)
	err := q.QueryRow(ctx, getStreakSQL, id).Scan(&count, &date)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StreakCache{}, nil
	}
	if err != nil {
		return domain.StreakCache{}, postgres.MapError(err, "user", id)
	}

	return domain.StreakCache{Count: count, LastEntryOn: pgDateToPtr(date)}, nil
}

const updateStreakSQL = `
INSERT INTO users (id, streak_count, last_journal_date)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
   SET streak_count      = EXCLUDED.streak_count,
       last_journal_date = EXCLUDED.last_journal_date,
       updated_at        = now()`

// UpdateStreakCache stores the streak and the most recent entry day.
func (r *Repo) UpdateStreakCache(ctx context.Context, id uuid.UUID, cache domain.StreakCache) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, updateStreakSQL, id, cache.Count, ptrToPgDate(cache.LastEntryOn)); err != nil {
		return postgres.MapError(err, "user", id)
	}

	return nil
}

// ListStaleStreaks returns users whose cached streak is positive but whose
// last entry day is before cutoff, ordered by id. afterID pages the result.
// limit must be positive.
func (r *Repo) ListStaleStreaks(ctx context.Context, cutoff domain.Date, afterID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}

	query, args, err := psql.
		Select("id").
		From("users").
		Where(sq.Gt{"streak_count": 0}).
		Where(sq.Lt{"last_journal_date": dateToPg(cutoff)}).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale streak query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stale streaks: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan stale streaks: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

// GetProfile returns the profile. Users that never set a nickname have no
// profile yet and yield domain.ErrNotFound.
func (r *Repo) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Nickname == "" {
		return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}

	p := toProfile(u)
	return &p, nil
}

const upsertProfileSQL = `
INSERT INTO users (id, nickname, notification_time)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
   SET nickname          = EXCLUDED.nickname,
       notification_time = EXCLUDED.notification_time,
       updated_at        = now()
RETURNING ` + userColumns

// UpsertProfile creates or replaces the nickname and reminder time.
func (r *Repo) UpsertProfile(ctx context.Context, id uuid.UUID, nickname string, notificationTime *string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, upsertProfileSQL, id, nickname, ptrStringToPgText(notificationTime)))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := toProfile(u)
	return &p, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u          domain.User
		notif      pgtype.Text
		usageDate  pgtype.Date
		streakDate pgtype.Date
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := row.Scan(
		&u.ID, &u.Nickname, &notif,
		&u.Usage.Count, &usageDate,
		&u.Streak.Count, &streakDate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.NotificationTime = pgTextToPtr(notif)
	u.Usage.CountedOn = pgDateToPtr(usageDate)
	u.Streak.LastEntryOn = pgDateToPtr(streakDate)
	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt

	return &u, nil
}

func toProfile(u *domain.User) domain.Profile {
	return domain.Profile{
		UserID:           u.ID,
		Nickname:         u.Nickname,
		NotificationTime: u.NotificationTime,
		StreakCount:      u.Streak.Count,
		CreatedAt:        u.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func dateToPg(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func ptrToPgDate(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return dateToPg(*d)
}

// pgDateToPtr returns nil for NULL. DATE values come back as midnight UTC.
func pgDateToPtr(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	out := domain.DateOf(d.Time, time.UTC)
	return &out
}
