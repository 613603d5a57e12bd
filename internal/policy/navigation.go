package policy

import profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"

// NavItem is one entry of the sidebar.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

var fullNavigation = []NavItem{
	{Name: "Home", Href: "/", Icon: "home"},
	{Name: "Jugadoras", Href: "/players", Icon: "users"},
	{Name: "Equipos", Href: "/teams", Icon: "users"},
	{Name: "Partidos", Href: "/matches", Icon: "trophy"},
	{Name: "Análisis", Href: "/analytics", Icon: "bar-chart-3"},
	{Name: "Exportaciones", Href: "/exports", Icon: "download"},
	{Name: "Configuración", Href: "/settings", Icon: "settings"},
	{Name: "Sobre la App", Href: "/about", Icon: "info"},
}

// coachHidden lists the entries trainers do not see.
var coachHidden = map[string]bool{
	"/analytics": true,
	"/exports":   true,
}

// NavigationSet returns the entries visible to role, in display order.
// Trainers get the reduced set; every other role, including none, gets
// the full set. Visibility only: routes stay reachable by URL.
func NavigationSet(role profileModel.Role) []NavItem {
	items := make([]NavItem, 0, len(fullNavigation))
	for _, item := range fullNavigation {
		if role == profileModel.RoleEntrenador && coachHidden[item.Href] {
			continue
		}
		items = append(items, item)
	}
	return items
}

// RoleLabel returns the display label for role.
func RoleLabel(role profileModel.Role) string {
	if role == profileModel.RoleDirectorTecnic {
		return "Director Técnico"
	}
	return "Entrenador"
}
