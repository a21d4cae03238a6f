package engine

import (
	"errors"
	"testing"
)

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
		wantMsg string
	}{
		{
			"deck size zero",
			Params{DeckSize: 0, MatchingCards: 0, DrawCount: 0, MinMatches: 1},
			ErrDeckSizeTooSmall,
			"Deck size must be at least 1",
		},
		{
			"deck size negative",
			Params{DeckSize: -5, MatchingCards: 0, DrawCount: 0, MinMatches: 1},
			ErrDeckSizeTooSmall,
			"Deck size must be at least 1",
		},
		{
			"matching exceeds deck",
			Params{DeckSize: 52, MatchingCards: 53, DrawCount: 5, MinMatches: 1},
			ErrMatchingExceedsDeck,
			"Number of matching cards cannot exceed deck size",
		},
		{
			"draw exceeds deck",
			Params{DeckSize: 52, MatchingCards: 4, DrawCount: 53, MinMatches: 1},
			ErrDrawExceedsDeck,
			"Draw count cannot exceed deck size",
		},
		{
			"min exceeds draw",
			Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 6},
			ErrMinExceedsDraw,
			"Minimum matches cannot exceed draw count",
		},
		{
			"min zero",
			Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 0},
			ErrMinTooSmall,
			"Minimum matches must be at least 1",
		},
		{
			"min negative",
			Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: -2},
			ErrMinTooSmall,
			"Minimum matches must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate(%+v) = %v, want %v", tt.params, err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	// 同时违反多条规则时，返回检查顺序里靠前的那条
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			"deck rule beats min rule",
			Params{DeckSize: 0, MatchingCards: 0, DrawCount: 0, MinMatches: 0},
			ErrDeckSizeTooSmall,
		},
		{
			"matching rule beats draw rule",
			Params{DeckSize: 5, MatchingCards: 9, DrawCount: 9, MinMatches: 1},
			ErrMatchingExceedsDeck,
		},
		{
			"draw rule beats min rule",
			Params{DeckSize: 5, MatchingCards: 3, DrawCount: 9, MinMatches: 0},
			ErrDrawExceedsDeck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.params); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate(%+v) = %v, want %v", tt.params, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	tests := []Params{
		{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 1},
		{DeckSize: 1, MatchingCards: 1, DrawCount: 1, MinMatches: 1},
		{DeckSize: 52, MatchingCards: 0, DrawCount: 52, MinMatches: 52},
		// 负的命中数不违反任何结构规则，由计算阶段按不可能事件处理
		{DeckSize: 52, MatchingCards: -3, DrawCount: 5, MinMatches: 1},
	}

	for _, params := range tests {
		if err := Validate(params); err != nil {
			t.Fatalf("Validate(%+v) = %v, want nil", params, err)
		}
	}
}
