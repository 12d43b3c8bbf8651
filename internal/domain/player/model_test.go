package player

import "testing"

func ptr[T any](v T) *T { return &v }

func TestFilters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantErr bool
	}{
		{name: "empty", filters: Filters{}},
		{name: "full", filters: Filters{
			Search: ptr("ann"), Gender: ptr(GenderFemale), Role: ptr(RoleHandler), TeamID: ptr(int64(3)),
			Sort: ptr(SortName), Order: ptr("asc"), Limit: ptr(20), Offset: ptr(0),
		}},
		{name: "bad gender", filters: Filters{Gender: ptr(Gender("X"))}, wantErr: true},
		{name: "bad role", filters: Filters{Role: ptr(Role("D"))}, wantErr: true},
		{name: "bad order", filters: Filters{Order: ptr("up")}, wantErr: true},
		{name: "zero limit", filters: Filters{Limit: ptr(0)}, wantErr: true},
		{name: "limit too large", filters: Filters{Limit: ptr(101)}, wantErr: true},
		{name: "negative offset", filters: Filters{Offset: ptr(-1)}, wantErr: true},
		{name: "bad sort", filters: Filters{Sort: ptr(SortField("age"))}, wantErr: true},
	}

	for _, tt := range tests {
		err := tt.filters.Validate()
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSplitRoster(t *testing.T) {
	regs := []Registration{
		{ID: 1, Role: RoleCaptain},
		{ID: 2, Role: RoleCoach},
		{ID: 3, Role: RoleDefault},
		{ID: 4, Role: RoleOwner},
		{ID: 5, Role: RoleSpiritCaptain},
	}

	players, staff := SplitRoster(regs)
	if len(players) != 3 || players[0].ID != 1 || players[1].ID != 3 || players[2].ID != 5 {
		t.Fatalf("unexpected players %+v", players)
	}
	if len(staff) != 2 || staff[0].ID != 2 || staff[1].ID != 4 {
		t.Fatalf("unexpected staff %+v", staff)
	}
	if RoleSpiritCaptain.Badge() != "Spirit Captain" || RoleDefault.Badge() != "" {
		t.Fatalf("unexpected badges")
	}
}

func TestFilters_CacheKeyDistinguishesUnset(t *testing.T) {
	a := Filters{Offset: ptr(0)}.CacheKey()
	b := Filters{}.CacheKey()
	if a[7] == b[7] {
		t.Fatalf("expected offset=0 and unset offset to differ in cache key")
	}
}
