package persistence

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// The typed repos below share one discipline: a load whose key is absent
// returns the documented default, and a load whose stored value fails to
// parse returns the same default with a logged warning. Parse failures never
// reach the caller as errors.

type versionRepo struct {
	kv     KVStore
	logger logger.Logger
}

func NewVersionRepo(kv KVStore, log logger.Logger) cv.Repository {
	return &versionRepo{kv: kv, logger: log}
}

func (r *versionRepo) Versions(ctx context.Context) []cv.Version {
	raw, err := r.kv.Get(ctx, KeyVersions)
	if err != nil {
		r.logger.Warn("Failed to read stored versions", zap.Error(err))
		return []cv.Version{}
	}
	if raw == nil {
		return []cv.Version{}
	}

	var versions []cv.Version
	if err := json.Unmarshal(raw, &versions); err != nil {
		r.logger.Warn("Stored versions are not parsable, using empty set",
			zap.String("key", KeyVersions), zap.Error(err))
		return []cv.Version{}
	}
	return versions
}

func (r *versionRepo) SaveVersions(ctx context.Context, versions []cv.Version) error {
	raw, err := json.Marshal(versions)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyVersions, raw)
}

func (r *versionRepo) ActiveVersionID(ctx context.Context) string {
	raw, err := r.kv.Get(ctx, KeyCurrentVersion)
	if err != nil {
		r.logger.Warn("Failed to read active version id", zap.Error(err))
		return ""
	}
	return string(raw)
}

func (r *versionRepo) SaveActiveVersionID(ctx context.Context, id string) error {
	return r.kv.Set(ctx, KeyCurrentVersion, []byte(id))
}

type sectionRepo struct {
	kv     KVStore
	logger logger.Logger
}

func NewSectionRepo(kv KVStore, log logger.Logger) section.Repository {
	return &sectionRepo{kv: kv, logger: log}
}

func (r *sectionRepo) Sections(ctx context.Context) []section.Config {
	raw, err := r.kv.Get(ctx, KeySections)
	if err != nil {
		r.logger.Warn("Failed to read sections config", zap.Error(err))
		return section.Defaults()
	}
	if raw == nil {
		return section.Defaults()
	}

	var sections []section.Config
	if err := json.Unmarshal(raw, &sections); err != nil {
		r.logger.Warn("Stored sections config is not parsable, using defaults",
			zap.String("key", KeySections), zap.Error(err))
		return section.Defaults()
	}
	return sections
}

func (r *sectionRepo) SaveSections(ctx context.Context, sections []section.Config) error {
	raw, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeySections, raw)
}

type themeRepo struct {
	kv     KVStore
	logger logger.Logger
}

func NewThemeRepo(kv KVStore, log logger.Logger) theme.Repository {
	return &themeRepo{kv: kv, logger: log}
}

func (r *themeRepo) CurrentTheme(ctx context.Context) string {
	raw, err := r.kv.Get(ctx, KeyTheme)
	if err != nil {
		r.logger.Warn("Failed to read current theme", zap.Error(err))
		return theme.DefaultID
	}
	if len(raw) == 0 {
		return theme.DefaultID
	}
	return string(raw)
}

func (r *themeRepo) SaveCurrentTheme(ctx context.Context, id string) error {
	return r.kv.Set(ctx, KeyTheme, []byte(id))
}
