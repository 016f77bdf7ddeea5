package taxconfig

import (
	"context"
	"errors"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/common"
	"github.com/bucefal91/commerce/internal/obs"
	"github.com/bucefal91/commerce/internal/taxtype"
)

// Service orchestrates custom tax type management and implements
// taxtype.CustomLoader for the calculation engine.
type Service struct {
	store    Store
	cache    *Cache
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewService constructs a Service.
func NewService(store Store, cache *Cache, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

// EnabledTypes implements taxtype.CustomLoader. Results are served from the
// Redis cache when possible; a cache failure falls through to Postgres.
func (s *Service) EnabledTypes(ctx context.Context) ([]taxtype.TaxType, error) {
	var configs []Config
	hit, err := s.cache.GetEnabled(ctx, &configs)
	if err != nil {
		s.logger.Warn().Err(err).Msg("tax type cache read")
	}
	cacheResult(hit)
	if !hit {
		configs, err = s.store.ListEnabled(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetEnabled(ctx, configs); err != nil {
			s.logger.Warn().Err(err).Msg("tax type cache write")
		}
	}
	types := make([]taxtype.TaxType, 0, len(configs))
	for _, cfg := range configs {
		types = append(types, cfg.TaxType())
	}
	return types, nil
}

// List returns every stored tax type.
func (s *Service) List(ctx context.Context) ([]Config, error) {
	return s.store.List(ctx)
}

// Get returns one stored tax type.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Config, error) {
	return s.store.Get(ctx, id)
}

// Create validates and persists a new tax type.
func (s *Service) Create(ctx context.Context, cfg Config) (Config, error) {
	if err := s.validateConfig(cfg); err != nil {
		return Config{}, err
	}
	created, err := s.store.Create(ctx, cfg)
	if err != nil {
		return Config{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update validates and replaces an existing tax type.
func (s *Service) Update(ctx context.Context, cfg Config) (Config, error) {
	if err := s.validateConfig(cfg); err != nil {
		return Config{}, err
	}
	updated, err := s.store.Update(ctx, cfg)
	if err != nil {
		return Config{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a stored tax type.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("tax type cache invalidate")
	}
}

func (s *Service) validateConfig(cfg Config) error {
	if err := s.validate.Struct(cfg); err != nil {
		return invalidConfig(validationDetails(err))
	}
	for _, row := range cfg.Rates {
		if row.Amount.IsNegative() || row.Amount.GreaterThan(decimal.NewFromInt(1)) {
			return invalidConfig(map[string]string{"rates": "amounts must be fractions between 0 and 1"})
		}
	}
	return nil
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		details["body"] = err.Error()
		return details
	}
	for _, fe := range fieldErrors {
		details[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " validation"
	}
	return details
}

func invalidConfig(details map[string]string) *common.AppError {
	return &common.AppError{
		Code:       "INVALID_TAX_TYPE",
		Message:    "tax type configuration is invalid",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func cacheResult(hit bool) {
	if obs.TaxConfigCacheTotal == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	obs.TaxConfigCacheTotal.WithLabelValues(result).Inc()
}
