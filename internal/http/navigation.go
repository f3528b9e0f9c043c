package httpx

import (
	"strings"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
)

// NavEntry is one entry of the master menu. An empty Required means any
// authenticated staff member may open it.
type NavEntry struct {
	Path     string
	Label    string
	Icon     string
	Subtitle string
	Required domainauth.PermissionKey
}

// MasterMenu returns every navigation entry in display order.
func MasterMenu() []NavEntry {
	return []NavEntry{
		{Path: PathDashboard, Label: "Dashboard", Icon: "📊"},
		{
			Path: PathCustomers, Label: "Müşteriler", Icon: "👥",
			Subtitle: "Müşteri yönetimi", Required: domainauth.PermManageCustomers,
		},
		{
			Path: PathFinancials, Label: "Finansal Veriler", Icon: "💰",
			Subtitle: "Mali durum", Required: domainauth.PermViewFinancials,
		},
		{
			Path: PathPartnershipCodes, Label: "İş Birliği Kodları", Icon: "🔑",
			Subtitle: "Kod yönetimi", Required: domainauth.PermManagePartnershipCodes,
		},
		{
			Path: PathPartnershipStats, Label: "İş Birliği İstatistikleri", Icon: "📈",
			Subtitle: "Kod performansı", Required: domainauth.PermViewPartnershipStats,
		},
		{
			Path: PathAccess, Label: "Erişim Yönetimi", Icon: "🔐",
			Subtitle: "Kullanıcı yetkileri", Required: domainauth.PermManageAccess,
		},
	}
}

// BuildMenu filters the master menu to the entries perms allows and marks
// the entry owning currentPath as active.
func BuildMenu(perms domainauth.Permissions, currentPath string) []viewmodel.MenuItem {
	var items []viewmodel.MenuItem
	for _, e := range MasterMenu() {
		if !perms.Allows(e.Required) {
			continue
		}
		items = append(items, viewmodel.MenuItem{
			Path:   e.Path,
			Label:  e.Label,
			Icon:   e.Icon,
			Active: currentPath == e.Path || strings.HasPrefix(currentPath, e.Path+"/"),
		})
	}
	return items
}

// dashboardTiles maps the permitted areas of a dashboard onto their tiles.
func dashboardTiles(keys []domainauth.PermissionKey) []viewmodel.Tile {
	byPerm := map[domainauth.PermissionKey]NavEntry{}
	for _, e := range MasterMenu() {
		if e.Required != "" {
			byPerm[e.Required] = e
		}
	}
	tiles := make([]viewmodel.Tile, 0, len(keys))
	for _, k := range keys {
		e, ok := byPerm[k]
		if !ok {
			continue
		}
		tiles = append(tiles, viewmodel.Tile{Path: e.Path, Icon: e.Icon, Label: e.Label, Subtitle: e.Subtitle})
	}
	return tiles
}

// permissionLabels names each flag for the access management screens.
//
//nolint:gochecknoglobals // static read-only lookup
var permissionLabels = map[domainauth.PermissionKey]string{
	domainauth.PermManageCustomers:        "Müşteri Yönetimi",
	domainauth.PermViewFinancials:         "Finansal Veriler",
	domainauth.PermManagePartnershipCodes: "Kod Yönetimi",
	domainauth.PermViewPartnershipStats:   "Kod İstatistikleri",
	domainauth.PermManageAccess:           "Erişim Yönetimi",
}

// PermissionLabel returns the display name of a permission flag.
func PermissionLabel(k domainauth.PermissionKey) string {
	if l, ok := permissionLabels[k]; ok {
		return l
	}
	return string(k)
}
