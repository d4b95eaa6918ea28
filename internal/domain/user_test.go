package domain

import "testing"

func TestUserRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role UserRole
		want bool
	}{
		{UserRoleMember, true},
		{UserRoleAdmin, true},
		{UserRole("owner"), false},
		{UserRole(""), false},
	}
	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.want {
			t.Errorf("UserRole(%q).IsValid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestUserRole_IsAdmin(t *testing.T) {
	t.Parallel()

	if UserRoleMember.IsAdmin() {
		t.Error("member should not be admin")
	}
	if !UserRoleAdmin.IsAdmin() {
		t.Error("admin should be admin")
	}
}
