package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"Taskboard/internal/ai"
	"Taskboard/internal/i18n"

	"golang.org/x/text/language"
)

const maxGoalLen = 500

// SuggestService generates todo suggestions for a goal.
type SuggestService struct {
	ai  ai.Completer
	log *slog.Logger
}

func NewSuggestService(c ai.Completer, log *slog.Logger) *SuggestService {
	return &SuggestService{ai: c, log: log}
}

// Suggest returns up to five suggestions. Error messages are in lang.
func (s *SuggestService) Suggest(ctx context.Context, lang language.Tag, goal string) ([]string, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, invalid(i18n.T(lang, i18n.GoalRequired))
	}
	if r := []rune(goal); len(r) > maxGoalLen {
		goal = string(r[:maxGoalLen])
	}
	if s.ai == nil {
		return nil, unavailable(i18n.T(lang, i18n.GenerateFailed), errors.New("AI client is not configured"))
	}

	list, err := ai.Suggest(ctx, s.ai, goal)
	switch {
	case err == nil:
		return list, nil
	case errors.Is(err, ai.ErrNoResponse):
		return nil, unavailable(i18n.T(lang, i18n.NoResponse), err)
	case errors.Is(err, ai.ErrNoArray):
		s.log.Warn("suggestions without array", "error", err)
		return nil, unavailable(i18n.T(lang, i18n.InvalidFormat), err)
	case errors.Is(err, ai.ErrNoSuggestions):
		s.log.Warn("suggestions unusable", "error", err)
		return nil, unavailable(i18n.T(lang, i18n.ParseFailed), err)
	}
	s.log.Error("generate suggestions", "error", err)
	return nil, unavailable(i18n.T(lang, i18n.GenerateFailed), err)
}
