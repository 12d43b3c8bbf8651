package player

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return "Not specified"
	}
}

// Role is the player's preferred on-field role.
type Role string

const (
	RoleCutter  Role = "C"
	RoleHandler Role = "H"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCutter, RoleHandler:
		return true
	default:
		return false
	}
}

func (r Role) Label() string {
	switch r {
	case RoleCutter:
		return "Cutter"
	case RoleHandler:
		return "Handler"
	default:
		return "Not specified"
	}
}

type Hand string

const (
	HandLeft  Hand = "L"
	HandRight Hand = "R"
)

func (h Hand) Label() string {
	switch h {
	case HandLeft:
		return "Left"
	case HandRight:
		return "Right"
	default:
		return "Not specified"
	}
}

// Summary is a row of the player directory.
type Summary struct {
	ID                int64
	UserID            int64
	Name              string
	Slug              string
	ProfilePictureURL string
	Gender            Gender
	City              string
}

// Page is one page of the player directory plus the total match count.
type Page struct {
	Players []Summary
	Total   int
}

// Player is the full profile.
type Player struct {
	ID                int64
	Slug              string
	FirstName         string
	LastName          string
	Gender            Gender
	MatchUp           Gender
	PreferredRole     Role
	ThrowingHand      Hand
	City              string
	ProfilePictureURL string
	Registrations     []Registration
}

func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// MatchUpLabel describes the gender match-up the player plays.
func (p Player) MatchUpLabel() string {
	switch p.MatchUp {
	case GenderMale:
		return "Male matching"
	case GenderFemale:
		return "Female matching"
	case GenderOther:
		return "Not specified"
	default:
		return "Not specified"
	}
}

// SortField is a column the directory can be sorted by.
type SortField string

const (
	SortName   SortField = "name"
	SortGender SortField = "gender"
	SortCity   SortField = "city"
	SortRole   SortField = "role"
)

// Filters narrows the player directory. Nil fields are not sent.
type Filters struct {
	Search *string    `query:"search"`
	Gender *Gender    `query:"gender"`
	Role   *Role      `query:"role"`
	TeamID *int64     `query:"team_id"`
	Sort   *SortField `query:"sort"`
	Order  *string    `query:"order"`
	Limit  *int       `query:"limit"`
	Offset *int       `query:"offset"`
}

func (f Filters) Validate() error {
	if f.Gender != nil && !f.Gender.Valid() {
		return fmt.Errorf("gender must be one of M, F, O")
	}
	if f.Role != nil && !f.Role.Valid() {
		return fmt.Errorf("role must be one of C, H")
	}
	if f.Sort != nil {
		switch *f.Sort {
		case SortName, SortGender, SortCity, SortRole:
		default:
			return fmt.Errorf("sort must be one of name, gender, city, role")
		}
	}
	if f.Order != nil && *f.Order != "asc" && *f.Order != "desc" {
		return fmt.Errorf("order must be asc or desc")
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > 100) {
		return fmt.Errorf("limit must be between 1 and 100")
	}
	if f.Offset != nil && *f.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if f.TeamID != nil && *f.TeamID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	return nil
}

// CacheKey returns the filter values in query order.
func (f Filters) CacheKey() []any {
	return []any{
		deref(f.Search), derefGender(f.Gender), derefRole(f.Role), deref64(f.TeamID),
		derefSort(f.Sort), deref(f.Order), derefInt(f.Limit), derefInt(f.Offset),
	}
}

func deref(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefGender(v *Gender) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

func derefRole(v *Role) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

func derefSort(v *SortField) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

func deref64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
