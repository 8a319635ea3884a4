package member

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	if r, err := ParseRole(" Admin "); err != nil || r != RoleAdmin {
		t.Fatalf("expected admin role, got %q err=%v", r, err)
	}
	if _, err := ParseRole("owner"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestMember_DisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		member Member
		want   string
	}{
		{member: Member{FirstName: "Scottie", LastName: "Scheffler"}, want: "S. Scheffler"},
		{member: Member{LastName: "Scheffler"}, want: "Scheffler"},
		{member: Member{FirstName: "Scottie"}, want: "Scottie"},
		{member: Member{Email: "s@example.com"}, want: "s@example.com"},
	}
	for _, tc := range tests {
		if got := tc.member.DisplayName(); got != tc.want {
			t.Fatalf("DisplayName() = %q, want %q", got, tc.want)
		}
	}
}

func TestMember_Permissions(t *testing.T) {
	t.Parallel()

	if !(Member{Role: RoleModerator}).CanModerate() {
		t.Fatalf("expected moderator to moderate")
	}
	if (Member{Role: RoleModerator}).IsAdmin() {
		t.Fatalf("expected moderator not to be admin")
	}
	if (Member{Role: RoleRegular}).CanModerate() {
		t.Fatalf("expected regular member not to moderate")
	}
}
