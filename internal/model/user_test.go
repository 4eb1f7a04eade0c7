package model

import (
	"fmt"
	"testing"
)

func TestRecentlyPlayedWith_MovesExistingToFront(t *testing.T) {
	u := &User{RecentlyPlayed: []string{"song_a", "song_b", "song_c"}}

	got := u.RecentlyPlayedWith("song_b")

	want := []string{"song_b", "song_a", "song_c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRecentlyPlayedWith_CapsAtTwenty(t *testing.T) {
	u := &User{}
	for i := 0; i < 21; i++ {
		u.RecentlyPlayed = u.RecentlyPlayedWith(fmt.Sprintf("song_%03d", i))
	}

	if len(u.RecentlyPlayed) != RecentlyPlayedCap {
		t.Fatalf("expected %d entries, got %d", RecentlyPlayedCap, len(u.RecentlyPlayed))
	}
	if u.RecentlyPlayed[0] != "song_020" {
		t.Errorf("expected most recent play first, got %s", u.RecentlyPlayed[0])
	}
	for _, id := range u.RecentlyPlayed {
		if id == "song_000" {
			t.Error("expected oldest entry to be evicted")
		}
	}
}

func TestRecentlyPlayedWith_NoDuplicates(t *testing.T) {
	u := &User{RecentlyPlayed: []string{"song_a"}}

	got := u.RecentlyPlayedWith("song_a")

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0] != "song_a" {
		t.Errorf("expected song_a, got %s", got[0])
	}
}
