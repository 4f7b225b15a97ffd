package service

import (
	"context"

	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/llm"
)

// OutlookService generates the optional LLM outlook line for the wallpaper.
type OutlookService interface {
	Generate(ctx context.Context, place string, weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, activity *domain.ActivityResult) (*domain.OutlookText, error)
}

type outlookService struct {
	llm llm.OutlookLLM
}

// NewOutlookService creates an OutlookService. The LLM client may wrap a nil
// OpenAI client; generation then fails with llm.ErrOpenAIUnavailable.
func NewOutlookService(client llm.OutlookLLM) OutlookService {
	return &outlookService{llm: client}
}

func (s *outlookService) Generate(ctx context.Context, place string, weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, activity *domain.ActivityResult) (*domain.OutlookText, error) {
	outlookCtx := &domain.OutlookContext{
		Place:    place,
		Weather:  weather,
		Solunar:  solunar,
		Activity: activity,
	}
	return s.llm.GenerateOutlook(ctx, outlookCtx)
}
