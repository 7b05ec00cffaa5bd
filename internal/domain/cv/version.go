package cv

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VersionType tags a version with the purpose it was written for. The wire
// values are the ones the original client stored, so existing snapshots keep
// loading unchanged.
type VersionType string

const (
	TypeGeneral    VersionType = "general"
	TypeCommercial VersionType = "comercial"
	TypeTech       VersionType = "tech"
	TypeAcademic   VersionType = "academico"
)

func (t VersionType) Valid() bool {
	switch t {
	case TypeGeneral, TypeCommercial, TypeTech, TypeAcademic:
		return true
	}
	return false
}

// Version is one named, independently editable snapshot of the CV document.
// The ID is assigned at creation and never changes.
type Version struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      VersionType `json:"type"`
	Data      Document    `json:"data"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewVersionID returns a fresh globally unique version id.
func NewVersionID() string {
	return uuid.NewString()
}

func (v Version) Clone() Version {
	out := v
	out.Data = v.Data.Clone()
	return out
}

// Repository persists the version set and the active-version pointer.
// Loads substitute well-defined defaults for absent or unreadable values and
// never fail; saves report the write outcome to the caller.
type Repository interface {
	Versions(ctx context.Context) []Version
	SaveVersions(ctx context.Context, versions []Version) error
	ActiveVersionID(ctx context.Context) string
	SaveActiveVersionID(ctx context.Context, id string) error
}
