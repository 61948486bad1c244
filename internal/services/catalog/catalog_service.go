package catalog

import (
	"errors"
	"strings"
)

var ErrModuleNotFound = errors.New("module not found")

// Categories accepted by the module filter.
const (
	CategoryAll   = "all"
	CategoryCore  = "core"
	CategoryAdmin = "admin"
)

// CatalogService serves the navigation entries, module tiles, and header
// copy backing the dashboard shell.
type CatalogService struct{}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Nav returns the fixed sidebar entries.
func (s *CatalogService) Nav() []NavItem {
	return navItems
}

// DashboardStats returns the four precomputed stat cards.
func (s *CatalogService) DashboardStats() []Stat {
	return dashboardStats
}

// Modules returns the tile catalog filtered by category. "all" (or an empty
// category) passes everything through; anything else keeps tiles whose
// category matches exactly, preserving original order.
func (s *CatalogService) Modules(category string) []Module {
	if category == "" || category == CategoryAll {
		return modules
	}

	filtered := make([]Module, 0, len(modules))
	for _, m := range modules {
		if m.Category == category {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// ModuleBySlug resolves a module from its URL slug (title lowercased with
// spaces collapsed to hyphens).
func (s *CatalogService) ModuleBySlug(slug string) (*Module, error) {
	for i := range modules {
		if Slug(modules[i].Title) == slug {
			m := modules[i]
			return &m, nil
		}
	}

	return nil, ErrModuleNotFound
}

// PageConfig returns the header copy for a section id, falling back to the
// dashboard pair for unrecognized ids.
func (s *CatalogService) PageConfig(id string) PageConfig {
	if cfg, ok := pageConfigs[id]; ok {
		return cfg
	}

	return pageConfigs["dashboard"]
}

// Slug converts a module title into its URL form.
func Slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
