package cmd

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/vodz/config"
	mhttp "github.com/kasuboski/vodz/pkg/http"
	"github.com/kasuboski/vodz/pkg/manager"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite"
	"github.com/kasuboski/vodz/pkg/tmdb"
	"github.com/kasuboski/vodz/pkg/xtream"
	"github.com/spf13/viper"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, fmt.Errorf("failed to read configurations: %w", err)
	}
	return cfg, nil
}

func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func newTmdbClient(cfg config.TMDB) (*tmdb.API, error) {
	opts := []mhttp.ClientOption{mhttp.WithMaxRetries(cfg.MaxRetries)}
	if cfg.BaseBackoff > 0 {
		opts = append(opts, mhttp.WithBaseBackoff(cfg.BaseBackoff))
	}

	client, err := tmdb.NewClientWithResponses(cfg.Server(),
		tmdb.WithHTTPClient(mhttp.NewRateLimitedHTTPClient(opts...)),
		tmdb.WithRequestEditorFn(tmdb.SetRequestAPIKey(cfg.APIKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	return tmdb.NewAPI(client, tmdb.WithTimeout(cfg.Timeout), tmdb.WithLanguage(cfg.Language)), nil
}

func newXtreamClient(cfg config.Xtream) (*xtream.Client, error) {
	client, err := xtream.New(cfg.BaseURL, cfg.Username, cfg.Password, xtream.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create xtream client: %w", err)
	}
	return client, nil
}

// newManager validates the configuration and wires the upstream clients and storage together.
// The returned close func releases the storage.
func newManager(ctx context.Context) (*manager.CatalogManager, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return buildManager(ctx, cfg)
}

// newReadOnlyManager only needs storage so upstream credentials are not validated.
// Building stream urls needs the provider though.
func newReadOnlyManager(ctx context.Context, needsProvider bool) (*manager.CatalogManager, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if needsProvider {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := v.Struct(cfg.Xtream); err != nil {
			return nil, nil, fmt.Errorf("invalid xtream config: %w", err)
		}
	}

	return buildManager(ctx, cfg)
}

func buildManager(ctx context.Context, cfg config.Config) (*manager.CatalogManager, func(), error) {
	tmdbClient, err := newTmdbClient(cfg.TMDB)
	if err != nil {
		return nil, nil, err
	}

	var xtreamClient xtream.IXtream
	if cfg.Xtream.BaseURL != "" {
		xtreamClient, err = newXtreamClient(cfg.Xtream)
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	guard := manager.NewSyncGuard(cfg.Manager.LockFile)
	m := manager.New(tmdbClient, xtreamClient, store, guard)

	return m, func() { store.Close() }, nil
}
