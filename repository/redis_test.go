package repository

import (
	"testing"

	"go-odds/engine"
)

func TestCacheKey(t *testing.T) {
	key := cacheKey(engine.Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 1})
	if key != "calc:52:4:5:1" {
		t.Fatalf("cacheKey = %q, want %q", key, "calc:52:4:5:1")
	}

	// 不同参数必须落到不同的键上
	other := cacheKey(engine.Params{DeckSize: 52, MatchingCards: 4, DrawCount: 1, MinMatches: 5})
	if other == key {
		t.Fatalf("distinct params share cache key %q", key)
	}
}

func TestDecodeCachedResult(t *testing.T) {
	result, err := decodeCachedResult(map[string]string{
		"probability": "0.34116",
		"percentage":  "34.12%",
	})
	if err != nil {
		t.Fatalf("decodeCachedResult: %v", err)
	}
	if result.Probability != 0.34116 {
		t.Fatalf("Probability = %v, want 0.34116", result.Probability)
	}
	if result.Percentage != "34.12%" {
		t.Fatalf("Percentage = %q, want %q", result.Percentage, "34.12%")
	}
}

func TestDecodeCachedResultBadFloat(t *testing.T) {
	if _, err := decodeCachedResult(map[string]string{
		"probability": "not-a-float",
		"percentage":  "34.12%",
	}); err == nil {
		t.Fatal("decodeCachedResult accepted a non-numeric probability")
	}
}

func TestCacheDisabled(t *testing.T) {
	// 未初始化 Redis 时读写都是安静的空操作
	params := engine.Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 1}

	if _, ok := GetCachedResult(params); ok {
		t.Fatal("GetCachedResult reported a hit without a client")
	}
	SetCachedResult(params, CachedResult{Probability: 0.5, Percentage: "50.00%"})
}

func TestHistoryDisabled(t *testing.T) {
	if HistoryEnabled() {
		t.Fatal("HistoryEnabled true without a database")
	}

	records, err := RecentCalculations(10)
	if err != nil {
		t.Fatalf("RecentCalculations without a database: %v", err)
	}
	if records != nil {
		t.Fatalf("RecentCalculations without a database = %v, want nil", records)
	}

	// 写入同样是空操作
	InsertCalculation(engine.Params{DeckSize: 52, MatchingCards: 4, DrawCount: 5, MinMatches: 1}, 0.34)
}
