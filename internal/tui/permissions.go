package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/permissions"
)

// PermissionsPage asks for camera, microphone and location access.
type PermissionsPage struct {
	requester  permissions.Requester
	policy     permissions.Policy
	timeout    time.Duration
	requesting bool
	grants     *permissions.Grants
	modal      Modal
	// advance is set when closing the current modal completes the page.
	advance  bool
	finished bool
}

func NewPermissionsPage(r permissions.Requester, policy permissions.Policy, timeout time.Duration) *PermissionsPage {
	return &PermissionsPage{requester: r, policy: policy, timeout: timeout}
}

func (p *PermissionsPage) Phase() flow.Phase { return flow.PhasePermissions }

func (p *PermissionsPage) Init() tea.Cmd { return nil }

// Modal returns the notice currently shown, if any.
func (p *PermissionsPage) Modal() Modal { return p.modal }

func (p *PermissionsPage) request() tea.Cmd {
	r, timeout := p.requester, p.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		g, err := r.RequestAll(ctx)
		return permissionsResultMsg{grants: g, err: err}
	}
}

func (p *PermissionsPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if p.finished {
		return nil, nil
	}

	if p.modal != nil {
		pop, cmd := p.modal.Update(msg)
		if !pop {
			return cmd, nil
		}
		p.modal = nil
		if p.advance {
			p.finished = true
			return cmd, done
		}
		return cmd, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Continue) && !p.requesting {
			p.requesting = true
			return p.request(), nil
		}

	case permissionsResultMsg:
		p.requesting = false
		if msg.err != nil {
			log.Warn("permission request failed", "err", msg.err)
			p.modal = NewErrorNotice("permissions-error", "Error", "Failed to request permissions. Please try again.")
			return nil, nil
		}
		g := msg.grants
		p.grants = &g
		if !p.policy.Allows(g) {
			log.Info("permissions incomplete", "missing", g.Missing())
			p.modal = NewErrorNotice("permissions-denied", "Permissions Required",
				"VahanChain cannot continue without "+strings.Join(g.Missing(), ", ")+" access. Grant them and try again.")
			return nil, nil
		}
		log.Info("permissions granted", "camera", g.Camera, "microphone", g.Microphone, "location", g.Location)
		p.advance = true
		body := "Camera, microphone, and location access are set up. VahanChain is ready to keep you safe on every journey."
		if !g.All() {
			body = "Some permissions were not granted (" + strings.Join(g.Missing(), ", ") + "). Features that depend on them stay disabled."
		}
		p.modal = NewNotice("permissions-granted", "Permissions", body)
	}
	return nil, nil
}

func (p *PermissionsPage) View(width, height int) string {
	if p.modal != nil {
		return p.modal.View(width, height)
	}

	rows := []struct {
		icon, title, desc string
		granted           func(permissions.Grants) bool
	}{
		{"📷", "Camera Access", "For AI safety monitoring", func(g permissions.Grants) bool { return g.Camera }},
		{"🎙", "Microphone Access", "For hands-free voice recognition", func(g permissions.Grants) bool { return g.Microphone }},
		{"📍", "Location Access", "For navigation & emergencies", func(g permissions.Grants) bool { return g.Location }},
	}

	var items []string
	for _, r := range rows {
		status := helpStyle.Render("○")
		if p.grants != nil {
			if r.granted(*p.grants) {
				status = lipgloss.NewStyle().Foreground(ColorGreen).Render("✓")
			} else {
				status = errorStyle.Render("✗")
			}
		}
		item := lipgloss.JoinHorizontal(lipgloss.Top,
			r.icon+"  ",
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(r.title), subtitleStyle.Render(r.desc)),
			"  ", status,
		)
		items = append(items, sectionStyle.Width(48).Render(item))
	}

	button := buttonStyle.Render("GRANT ACCESS")
	if p.requesting {
		button = disabledButtonStyle.Render("REQUESTING...")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("One-Time Setup"),
		subtitleStyle.Width(48).Align(lipgloss.Center).Render("VahanChain needs a few permissions to keep you safe on the road."),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
		"",
		button,
		helpStyle.Render("enter: grant access • q: quit"),
	)
	return center(width, height, content)
}
