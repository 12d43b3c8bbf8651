package tournament

import "testing"

func TestSeeding_OrderedAndRanks(t *testing.T) {
	s := Seeding{3: 30, 1: 10, 2: 20}

	got := s.Ordered()
	want := []int64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ordered() = %v, want %v", got, want)
		}
	}

	ranks := Seeding{7: 1, 2: 5, 4: 9}.Ranks()
	if len(ranks) != 3 || ranks[0] != 2 || ranks[1] != 4 || ranks[2] != 7 {
		t.Fatalf("Ranks() = %v, want [2 4 7]", ranks)
	}
}

func TestSeeding_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seeding Seeding
		wantErr bool
	}{
		{name: "dense", seeding: SeedingFromList([]int64{4, 5, 6})},
		{name: "empty", seeding: Seeding{}},
		{name: "gap", seeding: Seeding{1: 4, 3: 6}, wantErr: true},
		{name: "duplicate team", seeding: Seeding{1: 4, 2: 4}, wantErr: true},
		{name: "zero based", seeding: Seeding{0: 4}, wantErr: true},
	}

	for _, tt := range tests {
		err := tt.seeding.Validate()
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: Validate() err=%v, wantErr=%v", tt.name, err, tt.wantErr)
		}
	}
}
