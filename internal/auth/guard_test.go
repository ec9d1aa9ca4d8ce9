package auth

import "testing"

func TestAuthorize(t *testing.T) {
	t.Parallel()

	const owner, other = uint64(1), uint64(2)

	tests := []struct {
		name   string
		actor  uint64
		role   string
		action Action
		want   Decision
	}{
		{"owner reads own", owner, RoleStandard, ActionRead, Allow},
		{"owner updates own", owner, RoleStandard, ActionUpdate, Allow},
		{"owner deletes own", owner, RoleAdmin, ActionDelete, Allow},
		{"standard stranger reads", other, RoleStandard, ActionRead, Deny},
		{"standard stranger deletes", other, RoleStandard, ActionDelete, Deny},
		{"admin stranger deletes", other, RoleAdmin, ActionDelete, Allow},
		{"admin stranger updates", other, RoleAdmin, ActionUpdate, Allow},
		{"unknown role stranger", other, "auditor", ActionRead, Deny},
		{"unknown action owner", owner, RoleStandard, Action("transfer"), Deny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.actor, tt.role, owner, tt.action); got != tt.want {
				t.Fatalf("Authorize(%d,%q,%d,%q) = %v, want %v",
					tt.actor, tt.role, owner, tt.action, got, tt.want)
			}
		})
	}
}

func TestCanCreate(t *testing.T) {
	t.Parallel()

	if !CanCreate(RoleAdmin) {
		t.Fatal("admin must be allowed to create")
	}
	if CanCreate(RoleStandard) {
		t.Fatal("standard must not be allowed to create")
	}
	if CanCreate("") {
		t.Fatal("empty role must not be allowed to create")
	}
}
