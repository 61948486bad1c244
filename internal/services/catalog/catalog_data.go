package catalog

var navItems = []NavItem{
	{ID: "dashboard", Label: "Dashboard", Icon: "LayoutDashboard"},
	{ID: "participants", Label: "Participants", Icon: "Users"},
	{ID: "programmes", Label: "Programmes", Icon: "GraduationCap"},
	{ID: "analytics", Label: "Analytics", Icon: "BarChart3"},
	{ID: "settings", Label: "Settings", Icon: "Settings"},
}

var modules = []Module{
	{
		ID:          "user-mgmt",
		Title:       "User Management",
		Description: "Manage participant accounts, roles, and permissions",
		Icon:        "User",
		Stats:       map[string]any{"total": 1247, "active": 892},
		Color:       "from-yellow-400 to-amber-500",
		Category:    "core",
	},
	{
		ID:          "skills-gap",
		Title:       "Skills Gap Analysis",
		Description: "Identify skill deficiencies and training needs",
		Icon:        "BarChart",
		Stats:       map[string]any{"assessments": 342, "pending": 28},
		Color:       "from-amber-400 to-orange-500",
		Category:    "core",
	},
	{
		ID:          "training",
		Title:       "Training Curriculum",
		Description: "Design and manage learning pathways",
		Icon:        "BookOpen",
		Stats:       map[string]any{"courses": 156, "enrolled": 2341},
		Color:       "from-yellow-500 to-yellow-600",
		Category:    "core",
	},
	{
		ID:          "staff-mgmt",
		Title:       "Staff Management",
		Description: "Oversee workforce allocation and schedules",
		Icon:        "Users",
		Stats:       map[string]any{"staff": 384, "departments": 12},
		Color:       "from-emerald-500 to-green-600",
		Category:    "admin",
	},
	{
		ID:          "data-integ",
		Title:       "Data Integration",
		Description: "Connect and sync external data sources",
		Icon:        "RefreshCw",
		Stats:       map[string]any{"sources": 8, "synced": "12m"},
		Color:       "from-slate-400 to-gray-500",
		Category:    "admin",
	},
	{
		ID:          "jobs",
		Title:       "Jobs & Careers",
		Description: "Job matching and career progression tracking",
		Icon:        "Briefcase",
		Stats:       map[string]any{"openings": 47, "applications": 234},
		Color:       "from-amber-500 to-yellow-600",
		Category:    "core",
	},
	{
		ID:          "ext-interfaces",
		Title:       "Document Management",
		Description: "API connections and integrations",
		Icon:        "FolderOpen",
		Stats:       map[string]any{"endpoints": 24, "uptime": "99.9%"},
		Color:       "from-gray-500 to-slate-600",
		Category:    "admin",
	},
	{
		ID:          "crm",
		Title:       "CRM Integration",
		Description: "Customer relationship management sync",
		Icon:        "Handshake",
		Stats:       map[string]any{"contacts": 3421, "lastSync": "5m"},
		Color:       "from-yellow-400 to-amber-500",
		Category:    "integration",
	},
}

var dashboardStats = []Stat{
	{Label: "Total Participants", Value: "1,247", Change: "+12%", Up: true},
	{Label: "Active Programmes", Value: "156", Change: "+8%", Up: true},
	{Label: "Employment Rate", Value: "78.4%", Change: "+3.2%", Up: true},
	{Label: "Skill Coverage", Value: "94%", Change: "-1%", Up: false},
}

var pageConfigs = map[string]PageConfig{
	"dashboard": {
		Title:    "Platform Overview",
		Subtitle: "Skills & Employment Management System",
	},
	"participants": {
		Title:    "Participants",
		Subtitle: "Manage all programme participants",
	},
	"programmes": {
		Title:    "Programmes",
		Subtitle: "View and manage training programmes",
	},
	"analytics": {
		Title:    "Analytics",
		Subtitle: "Performance metrics and reports",
	},
	"settings": {
		Title:    "Settings",
		Subtitle: "Configure platform settings",
	},
}
