package http

import (
	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
)

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Version DTOs. The domain types already carry the wire-format JSON tags, so
// responses embed them directly.

type StateDTO struct {
	ActiveVersionID string           `json:"activeVersionId"`
	Versions        []cv.Version     `json:"versions"`
	Sections        []section.Config `json:"sections"`
	Theme           string           `json:"theme"`
}

func ToStateDTO(s builder.State) StateDTO {
	return StateDTO{
		ActiveVersionID: s.ActiveVersionID,
		Versions:        s.Versions,
		Sections:        s.Sections,
		Theme:           s.Theme,
	}
}

type CreateVersionRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=general comercial tech academico"`
	BaseVersionID string `json:"baseVersionId"`
}

type VersionResponse struct {
	Version cv.Version `json:"version"`
	State   StateDTO   `json:"state"`
}

// Section DTOs

type AddSectionRequest struct {
	Title string `json:"title" binding:"required"`
}

type ReorderSectionsRequest struct {
	FromIndex *int `json:"fromIndex" binding:"required"`
	ToIndex   *int `json:"toIndex" binding:"required"`
}

// Theme DTOs

type SelectThemeRequest struct {
	ID   string `json:"id" binding:"required"`
	Dark bool   `json:"dark"`
}

type ThemeListResponse struct {
	Themes  []theme.Config `json:"themes"`
	Current string         `json:"current"`
}

// Rewrite DTOs

type RewriteRequest struct {
	Text        string `json:"text" binding:"required"`
	VersionType string `json:"versionType" binding:"required,oneof=general comercial tech academico"`
	FieldType   string `json:"fieldType" binding:"required,oneof=profile experience projects skills"`
}

type RewriteResponse struct {
	OriginalText  string `json:"originalText"`
	RewrittenText string `json:"rewrittenText"`
}

// Public read model for the renderer: the active document, the enabled
// sections in order and the selected palette.

type PublicCVResponse struct {
	Version  *cv.Version      `json:"version"`
	Sections []section.Config `json:"sections"`
	Theme    theme.Config     `json:"theme"`
}
