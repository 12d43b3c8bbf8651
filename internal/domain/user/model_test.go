package user

import (
	"testing"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
)

func TestValidateOTP(t *testing.T) {
	for _, code := range []string{"123456", "000000"} {
		if err := ValidateOTP(code); err != nil {
			t.Fatalf("ValidateOTP(%q) unexpected error: %v", code, err)
		}
	}
	for _, code := range []string{"", "12345", "1234567", "12a456", "١٢٣٤٥٦"} {
		if err := ValidateOTP(code); err == nil {
			t.Fatalf("ValidateOTP(%q) expected error", code)
		}
	}
}

func TestAccess_ScoreSubmission(t *testing.T) {
	m := match.Match{
		Team1:      match.Resolved{Team: team.Team{ID: 10}, Seed: 1},
		Team2:      match.Resolved{Team: team.Team{ID: 20}, Seed: 2},
		Suggested1: &match.SuggestedScore{Score1: 13, Score2: 9},
	}

	captainOf1 := Access{AdminTeamIDs: []int64{10}}
	if captainOf1.CanSubmitScore(m) {
		t.Fatalf("team 1 already reported, expected no submission")
	}
	if !captainOf1.IsMatchTeamAdmin(m) {
		t.Fatalf("expected team 1 admin to administer the match")
	}

	captainOf2 := Access{AdminTeamIDs: []int64{20}}
	if !captainOf2.CanSubmitScore(m) {
		t.Fatalf("team 2 has not reported, expected submission allowed")
	}

	if (Access{}).IsOfficial() || !(Access{IsTournamentVolunteer: true}).IsOfficial() {
		t.Fatalf("unexpected IsOfficial results")
	}
}

func TestOTPLogin_Validate(t *testing.T) {
	ok := OTPLogin{Email: "captain@example.org", OTP: "654321", Timestamp: 1711270000}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := ok
	bad.OTP = "65432"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected short otp to fail")
	}

	bad = ok
	bad.Email = "not-an-email"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected invalid email to fail")
	}
}
