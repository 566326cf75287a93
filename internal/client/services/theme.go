package services

import (
	"context"

	"github.com/novakart/storefront/internal/client/repositories/state"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService persists the display theme preference across restarts.
type ThemeService struct {
	states state.Repository
}

func NewThemeService(states state.Repository) *ThemeService {
	return &ThemeService{states: states}
}

// Current returns the stored theme, defaulting to light.
func (s *ThemeService) Current(ctx context.Context) string {
	raw, err := s.states.Get(ctx, state.KeyTheme)
	if err != nil || string(raw) != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle flips the theme and returns the new value.
func (s *ThemeService) Toggle(ctx context.Context) (string, error) {
	next := ThemeDark
	if s.Current(ctx) == ThemeDark {
		next = ThemeLight
	}
	if err := s.states.Set(ctx, state.KeyTheme, []byte(next)); err != nil {
		return "", err
	}
	return next, nil
}
