package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/llm"
)

type mockOutlookLLM struct {
	captured *domain.OutlookContext
	out      *domain.OutlookText
	err      error
}

func (m *mockOutlookLLM) GenerateOutlook(ctx context.Context, outlookCtx *domain.OutlookContext) (*domain.OutlookText, error) {
	m.captured = outlookCtx
	return m.out, m.err
}

func TestOutlookService_Generate(t *testing.T) {
	mock := &mockOutlookLLM{
		out: &domain.OutlookText{Headline: "Good window ahead", Tip: "Follow the pressure"},
	}
	svc := NewOutlookService(mock)

	weather := &domain.WeatherSnapshot{PressureTrend: domain.PressureStable}
	solunar := &domain.SolunarSnapshot{}
	activity := &domain.ActivityResult{Score: 4}

	out, err := svc.Generate(context.Background(), "Tampere", weather, solunar, activity)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out.Headline != "Good window ahead" {
		t.Errorf("Headline = %q", out.Headline)
	}

	if mock.captured == nil {
		t.Fatal("LLM was not invoked")
	}
	if mock.captured.Place != "Tampere" {
		t.Errorf("context place = %q, want Tampere", mock.captured.Place)
	}
	if mock.captured.Weather != weather || mock.captured.Solunar != solunar || mock.captured.Activity != activity {
		t.Error("context does not carry the provided inputs")
	}
}

func TestOutlookService_Generate_NilClient(t *testing.T) {
	// An unconfigured OpenAI client is typed nil; generation must fail with
	// the sentinel instead of panicking.
	var client *llm.OpenAIClient
	svc := NewOutlookService(client)

	_, err := svc.Generate(context.Background(), "Tampere", &domain.WeatherSnapshot{}, &domain.SolunarSnapshot{}, &domain.ActivityResult{})
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("Generate() error = %v, want %v", err, llm.ErrOpenAIUnavailable)
	}
}
