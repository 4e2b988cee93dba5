package game

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"easy", LevelEasy, false},
		{"Medium", LevelMedium, false},
		{" HARD ", LevelHard, false},
		{"insane", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Fatalf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"single", "1p", "SinglePlayer"} {
		if m, err := ParseMode(s); err != nil || m != ModeSinglePlayer {
			t.Errorf("ParseMode(%q) = %v, %v; want SinglePlayer", s, m, err)
		}
	}
	for _, s := range []string{"two", "2p", "two-player"} {
		if m, err := ParseMode(s); err != nil || m != ModeTwoPlayer {
			t.Errorf("ParseMode(%q) = %v, %v; want TwoPlayer", s, m, err)
		}
	}
	if _, err := ParseMode("co-op"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(co-op) error = %v, want ErrUnknownMode", err)
	}
}

func TestModePlayers(t *testing.T) {
	if got := ModeSinglePlayer.Players(); len(got) != 1 || got[0] != Player1 {
		t.Errorf("single-player participants = %v", got)
	}
	if got := ModeTwoPlayer.Players(); len(got) != 2 || got[0] != Player1 || got[1] != Player2 {
		t.Errorf("two-player participants = %v", got)
	}
}

func TestPlayerOther(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 || PlayerNone.Other() != PlayerNone {
		t.Error("Other() does not pair Player1 and Player2")
	}
}

func TestEntityString(t *testing.T) {
	tests := []struct {
		e    Entity
		want string
	}{
		{Entity{Kind: KindMole, Owner: Player2}, "Mole(Player2)"},
		{Entity{Kind: KindMole}, "Mole"},
		{Entity{Kind: KindBomb}, "Bomb"},
		{Entity{Kind: KindNeutral}, "Neutral"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}
