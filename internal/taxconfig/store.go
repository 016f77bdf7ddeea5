package taxconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bucefal91/commerce/internal/common"
)

// ErrStoreUnavailable indicates the tax type store dependency is not configured.
var ErrStoreUnavailable = errors.New("taxconfig: store unavailable")

// Store provides database accessors for custom tax types.
type Store interface {
	List(ctx context.Context) ([]Config, error)
	ListEnabled(ctx context.Context) ([]Config, error)
	Get(ctx context.Context, id uuid.UUID) (Config, error)
	Create(ctx context.Context, cfg Config) (Config, error)
	Update(ctx context.Context, cfg Config) (Config, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewStore constructs a Store backed by a pgx connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

type pgStore struct {
	pool *pgxpool.Pool
}

// EnsureSchema creates the tax_types table when it does not exist yet. The
// service owns its schema; there is no separate migration step to run.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return ErrStoreUnavailable
	}
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS tax_types (
	id UUID PRIMARY KEY,
	label TEXT NOT NULL,
	display_label TEXT NOT NULL,
	rounding_mode TEXT NOT NULL,
	display_inclusive BOOLEAN NOT NULL DEFAULT FALSE,
	enabled BOOLEAN NOT NULL DEFAULT TRUE,
	rates JSONB NOT NULL,
	territories JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	if err != nil {
		return fmt.Errorf("ensure tax_types schema: %w", err)
	}
	return nil
}

const configColumns = `id, label, display_label, rounding_mode, display_inclusive, enabled, rates, territories, created_at, updated_at`

// List returns every stored tax type ordered by creation time.
func (s *pgStore) List(ctx context.Context) ([]Config, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.pool.Query(ctx, `SELECT `+configColumns+` FROM tax_types ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConfigs(rows)
}

// ListEnabled returns the stored tax types that participate in calculation.
func (s *pgStore) ListEnabled(ctx context.Context) ([]Config, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.pool.Query(ctx, `SELECT `+configColumns+` FROM tax_types WHERE enabled ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConfigs(rows)
}

// Get fetches a single tax type by ID.
func (s *pgStore) Get(ctx context.Context, id uuid.UUID) (Config, error) {
	if s == nil || s.pool == nil {
		return Config{}, ErrStoreUnavailable
	}
	row := s.pool.QueryRow(ctx, `SELECT `+configColumns+` FROM tax_types WHERE id = $1`, id)
	cfg, err := scanConfig(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Config{}, notFound(id)
	}
	return cfg, err
}

// Create persists a new tax type and returns the stored row.
func (s *pgStore) Create(ctx context.Context, cfg Config) (Config, error) {
	if s == nil || s.pool == nil {
		return Config{}, ErrStoreUnavailable
	}
	rates, territories, err := encodeJSONColumns(cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	row := s.pool.QueryRow(ctx, `INSERT INTO tax_types (id, label, display_label, rounding_mode, display_inclusive, enabled, rates, territories)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+configColumns,
		cfg.ID, cfg.Label, cfg.DisplayLabel, cfg.RoundingMode, cfg.DisplayInclusive, cfg.Enabled, rates, territories)
	return scanConfig(row)
}

// Update replaces an existing tax type and returns the stored row.
func (s *pgStore) Update(ctx context.Context, cfg Config) (Config, error) {
	if s == nil || s.pool == nil {
		return Config{}, ErrStoreUnavailable
	}
	rates, territories, err := encodeJSONColumns(cfg)
	if err != nil {
		return Config{}, err
	}
	row := s.pool.QueryRow(ctx, `UPDATE tax_types
SET label = $2, display_label = $3, rounding_mode = $4, display_inclusive = $5, enabled = $6, rates = $7, territories = $8, updated_at = now()
WHERE id = $1
RETURNING `+configColumns,
		cfg.ID, cfg.Label, cfg.DisplayLabel, cfg.RoundingMode, cfg.DisplayInclusive, cfg.Enabled, rates, territories)
	updated, err := scanConfig(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Config{}, notFound(cfg.ID)
	}
	return updated, err
}

// Delete removes a tax type by ID.
func (s *pgStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s == nil || s.pool == nil {
		return ErrStoreUnavailable
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM tax_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func encodeJSONColumns(cfg Config) ([]byte, []byte, error) {
	rates, err := json.Marshal(cfg.Rates)
	if err != nil {
		return nil, nil, fmt.Errorf("encode rates: %w", err)
	}
	territories, err := json.Marshal(cfg.Territories)
	if err != nil {
		return nil, nil, fmt.Errorf("encode territories: %w", err)
	}
	return rates, territories, nil
}

func scanConfigs(rows pgx.Rows) ([]Config, error) {
	var configs []Config
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func scanConfig(row pgx.Row) (Config, error) {
	var (
		cfg         Config
		rates       []byte
		territories []byte
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&cfg.ID, &cfg.Label, &cfg.DisplayLabel, &cfg.RoundingMode, &cfg.DisplayInclusive, &cfg.Enabled, &rates, &territories, &createdAt, &updatedAt); err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(rates, &cfg.Rates); err != nil {
		return Config{}, fmt.Errorf("decode rates: %w", err)
	}
	if err := json.Unmarshal(territories, &cfg.Territories); err != nil {
		return Config{}, fmt.Errorf("decode territories: %w", err)
	}
	cfg.CreatedAt = createdAt
	cfg.UpdatedAt = updatedAt
	return cfg, nil
}

func notFound(id uuid.UUID) *common.AppError {
	return common.NewAppError("TAX_TYPE_NOT_FOUND", fmt.Sprintf("tax type %s not found", id), http.StatusNotFound, nil)
}
