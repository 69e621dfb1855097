package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestHandoutList(t *testing.T) {
	svc := NewHandoutService(nil, nil, zerolog.Nop())

	handouts := svc.List(context.Background())
	if len(handouts) != 8 {
		t.Fatalf("List() returned %d handouts, want 8", len(handouts))
	}

	for i, h := range handouts {
		if h.Week != i+1 {
			t.Errorf("handout at index %d has week %d, want %d", i, h.Week, i+1)
		}
		if h.Title == "" || h.Summary == "" {
			t.Errorf("week %d missing title or summary", h.Week)
		}
		if h.Sections != nil {
			t.Errorf("week %d listing leaked content sections", h.Week)
		}
	}
}

func TestHandoutGetPageUnknownWeek(t *testing.T) {
	svc := NewHandoutService(nil, nil, zerolog.Nop())

	_, err := svc.GetPage(context.Background(), 99, 1)
	if !errors.Is(err, ErrHandoutNotFound) {
		t.Errorf("GetPage(99) error = %v, want ErrHandoutNotFound", err)
	}
}
