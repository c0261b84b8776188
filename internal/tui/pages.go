package tui

import (
	"github.com/vahanchain/vahanchain/internal/permissions"
)

// Deps wires every page of the application.
type Deps struct {
	Main        MainDeps
	Permissions permissions.Requester
	Policy      permissions.Policy
}

// NewPages builds one page per phase, in visiting order.
func NewPages(d Deps) []Page {
	pages := []Page{NewSplashPage(d.Main.Timings)}
	for _, ob := range NewOnboardingPages() {
		pages = append(pages, ob)
	}
	pages = append(pages,
		NewPermissionsPage(d.Permissions, d.Policy, d.Main.Timings.PermissionTimeout),
		NewMainPage(d.Main),
	)
	return pages
}
