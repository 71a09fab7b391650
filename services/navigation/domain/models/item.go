package models

import (
	"fmt"
	"time"
)

// Scope says which menu a navigation item belongs to: the public-facing
// navbar or the authenticated dashboard sidebar.
type Scope string

const (
	ScopePublic    Scope = "public"
	ScopeDashboard Scope = "dashboard"
)

// SectionMain is the reserved default section for dashboard items.
// It always exists and can never be deleted.
const SectionMain = "main"

// ParseScope converts the wire value ("public" or "dashboard") to a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case string(ScopePublic):
		return ScopePublic, nil
	case string(ScopeDashboard):
		return ScopeDashboard, nil
	default:
		return "", fmt.Errorf("unknown scope %q", s)
	}
}

// ScopeFromPublic maps the stored is_public flag to a Scope.
func ScopeFromPublic(isPublic bool) Scope {
	if isPublic {
		return ScopePublic
	}
	return ScopeDashboard
}

// IsPublic reports whether the scope is the public menu.
func (s Scope) IsPublic() bool {
	return s == ScopePublic
}

// Partition identifies a distinct ordering domain. Order values are dense
// (base 0, no gaps) within a partition after every reorder; deletes may leave
// gaps until the next reorder restores density.
type Partition struct {
	Scope   Scope
	Section string
}

// NormalizeSection maps a raw section value to its canonical form: public
// items carry no section, dashboard items default to "main".
func NormalizeSection(scope Scope, section string) string {
	if scope.IsPublic() {
		return ""
	}
	if section == "" {
		return SectionMain
	}
	return section
}

// NavItem is one entry of a navigation menu.
type NavItem struct {
	ID        int64
	Name      string
	Target    string // absolute URL, /-path, or #fragment
	IsPublic  bool
	Order     int
	IsActive  bool // inactive items are hidden from public listings but stay editable
	Icon      string
	Section   string // dashboard only; "" for public items
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scope returns the item's menu scope.
func (i *NavItem) Scope() Scope {
	return ScopeFromPublic(i.IsPublic)
}

// Partition returns the ordering domain the item belongs to.
func (i *NavItem) Partition() Partition {
	return Partition{
		Scope:   i.Scope(),
		Section: NormalizeSection(i.Scope(), i.Section),
	}
}

// ItemPatch carries a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Name     *string
	Target   *string
	Order    *int
	IsActive *bool
	IsPublic *bool
	Icon     *string
	Section  *string
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Target == nil && p.Order == nil &&
		p.IsActive == nil && p.IsPublic == nil && p.Icon == nil && p.Section == nil
}

// Move is one entry of a bulk reorder: item id → new order value.
type Move struct {
	ID    int64
	Order int
}
