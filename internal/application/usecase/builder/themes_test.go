package builder

import (
	"context"
	"errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaguilard28/cv-areli/pkg/apperror"
)

func (s *EngineTestSuite) Test_Themes_ListsRegistry() {
	themes := s.engine.Themes()
	require.Len(s.T(), themes, 4)
	assert.Equal(s.T(), "default", themes[0].ID)
}

func (s *EngineTestSuite) Test_ChangeTheme() {
	ctx := context.Background()

	state, err := s.engine.ChangeTheme(ctx, "corporate", false)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "corporate", state.Theme)
}

func (s *EngineTestSuite) Test_ChangeTheme_UnknownID_Rejected() {
	ctx := context.Background()

	state, err := s.engine.ChangeTheme(ctx, "neon", false)
	require.Error(s.T(), err)

	var appErr *apperror.AppError
	require.True(s.T(), errors.As(err, &appErr))
	assert.True(s.T(), errors.Is(err, apperror.ErrInvalidInput))
	// The selected theme is untouched.
	assert.Equal(s.T(), "default", state.Theme)
}
