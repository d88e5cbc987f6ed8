package entity

import "testing"

func TestMilestoneReached(t *testing.T) {
	cases := []struct {
		points int
		want   bool
	}{
		{0, false},
		{1, false},
		{9, false},
		{10, true},
		{11, false},
		{19, false},
		{20, true},
		{100, true},
	}
	for _, tc := range cases {
		if got := MilestoneReached(tc.points); got != tc.want {
			t.Errorf("MilestoneReached(%d) = %v, want %v", tc.points, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{"customer", "admin", "employee"} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "Customer", "root", "guest"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}
