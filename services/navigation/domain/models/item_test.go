package models

import "testing"

func TestParseScope(t *testing.T) {
	t.Run("public", func(t *testing.T) {
		s, err := ParseScope("public")
		if err != nil || s != ScopePublic {
			t.Fatalf("got %v, %v", s, err)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		s, err := ParseScope("dashboard")
		if err != nil || s != ScopeDashboard {
			t.Fatalf("got %v, %v", s, err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseScope("sidebar"); err == nil {
			t.Fatal("expected error for unknown scope")
		}
	})
}

func TestNormalizeSection(t *testing.T) {
	tests := []struct {
		scope   Scope
		section string
		want    string
	}{
		{ScopePublic, "", ""},
		{ScopePublic, "admin", ""}, // public items never carry a section
		{ScopeDashboard, "", SectionMain},
		{ScopeDashboard, "analytics", "analytics"},
	}
	for _, tt := range tests {
		if got := NormalizeSection(tt.scope, tt.section); got != tt.want {
			t.Errorf("NormalizeSection(%v, %q) = %q, want %q", tt.scope, tt.section, got, tt.want)
		}
	}
}

func TestNavItem_Partition(t *testing.T) {
	dash := &NavItem{IsPublic: false, Section: ""}
	if p := dash.Partition(); p != (Partition{ScopeDashboard, SectionMain}) {
		t.Fatalf("unexpected partition %+v", p)
	}

	pub := &NavItem{IsPublic: true, Section: "leftover"}
	if p := pub.Partition(); p != (Partition{ScopePublic, ""}) {
		t.Fatalf("unexpected partition %+v", p)
	}
}

func TestItemPatch_Empty(t *testing.T) {
	if !(ItemPatch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}
	name := "x"
	if (ItemPatch{Name: &name}).Empty() {
		t.Fatal("patch with name should not be empty")
	}
}
