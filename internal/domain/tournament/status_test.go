package tournament

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "registration_open", want: StatusRegistrationOpen},
		{in: "live", want: StatusLive},
		{in: "LIV", want: StatusLive},
		{in: "DFT", want: StatusDraft},
		{in: "SCH", want: StatusScheduled},
		{in: "COM", want: StatusCompleted},
		{in: "Live", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseStatus(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseStatus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStatus_TextRoundTripUsesBackendValue(t *testing.T) {
	b, err := StatusScheduled.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "scheduled" {
		t.Fatalf("expected backend value, got %s", b)
	}

	var s Status
	if err := s.UnmarshalText([]byte("SCH")); err != nil || s != StatusScheduled {
		t.Fatalf("unmarshal legacy code: status=%s err=%v", s, err)
	}

	if _, err := Status(0).MarshalText(); err == nil {
		t.Fatalf("expected zero status to fail marshalling")
	}
}

func TestStatus_Capabilities(t *testing.T) {
	if !StatusScheduled.Editable() || StatusLive.Editable() {
		t.Fatalf("only scheduled tournaments are editable")
	}
	if !StatusLive.AcceptsScores() || StatusCompleted.AcceptsScores() {
		t.Fatalf("only live tournaments accept scores")
	}
}
