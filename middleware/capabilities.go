package middleware

import "smart-order/models"

// Capability tags name the admin surfaces a role may reach. The mapping is
// a single static allow-list checked at the routing boundary; individual
// handlers never inspect roles themselves.
type Capability string

const (
	CapDashboard Capability = "dashboard"
	CapTables    Capability = "tables"
	CapQRCodes   Capability = "qrcodes"
	CapKitchen   Capability = "kitchen"
	CapMenu      Capability = "menu"
	CapHistory   Capability = "history"
	CapUsers     Capability = "users"
	CapSettings  Capability = "settings"
)

var roleCapabilities = map[models.UserRole][]Capability{
	models.RoleAdmin: {
		CapDashboard, CapTables, CapQRCodes, CapKitchen,
		CapMenu, CapHistory, CapUsers, CapSettings,
	},
	models.RoleKitchen: {CapKitchen},
	models.RoleWaiter:  {CapDashboard, CapTables, CapKitchen},
}

func HasCapability(role models.UserRole, capability Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Capabilities lists a role's allowed surfaces, sent to the client at login
// so the UI can decide which tabs to draw.
func Capabilities(role models.UserRole) []Capability {
	return append([]Capability{}, roleCapabilities[role]...)
}
