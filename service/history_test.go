package service

import "testing"

func TestRecentHistoryWithoutStore(t *testing.T) {
	// 没配置历史存储时返回空列表而不是报错
	resp, err := RecentHistory(20)
	if err != nil {
		t.Fatalf("RecentHistory: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(resp.Items))
	}
}

func TestGetStandardDeck(t *testing.T) {
	resp := GetStandardDeck()
	if resp.DeckSize != 52 {
		t.Fatalf("DeckSize = %d, want 52", resp.DeckSize)
	}
	if len(resp.Deck) != resp.DeckSize {
		t.Fatalf("deck length %d does not match DeckSize %d", len(resp.Deck), resp.DeckSize)
	}
}
