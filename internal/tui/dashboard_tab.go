package tui

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/chain"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// BalanceFetcher reads the native balance of an address.
type BalanceFetcher interface {
	Balance(ctx context.Context, addr string) (*big.Int, error)
}

// DashboardTab is the home tab: greeting, reputation, balances and the
// drive button.
type DashboardTab struct {
	balances BalanceFetcher
	timeout  time.Duration
	now      func() time.Time

	balance        *big.Int
	balanceErr     error
	balanceLoading bool
	driving        bool
	monitor        progress.Model
}

func NewDashboardTab(b BalanceFetcher, timeout time.Duration) *DashboardTab {
	return &DashboardTab{
		balances: b,
		timeout:  timeout,
		now:      time.Now,
		monitor: progress.New(
			progress.WithSolidFill(string(ColorGreen)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}
}

func (t *DashboardTab) Tab() flow.Tab { return flow.TabDashboard }

func (t *DashboardTab) Driving() bool { return t.driving }

func (t *DashboardTab) Init(ctx ViewContext) tea.Cmd {
	if t.balances == nil || ctx.Address == "" {
		return nil
	}
	t.balanceLoading = true
	t.balanceErr = nil
	b, addr, timeout := t.balances, ctx.Address, t.timeout
	return func() tea.Msg {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		wei, err := b.Balance(c, addr)
		return balanceMsg{address: addr, wei: wei, err: err}
	}
}

func (t *DashboardTab) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case balanceMsg:
		t.balanceLoading = false
		t.balance, t.balanceErr = msg.wei, msg.err
		if msg.err != nil {
			log.Warn("balance fetch failed", "err", msg.err)
		}
	case tea.KeyMsg:
		if key.Matches(msg, keys.Drive) {
			t.driving = !t.driving
			log.Info("drive toggled", "active", t.driving)
		}
	}
	return nil
}

func (t *DashboardTab) View(ctx ViewContext, width, height int) string {
	innerWidth := max(30, width-6)

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(greeting(t.now(), ctx.Profile.Name)),
		subtitleStyle.Render(ctx.Profile.Level),
	)

	reputation := sectionStyle.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("On-Chain Reputation"),
		accentStyle.Render(fmt.Sprintf("%d", ctx.Profile.Reputation))+" "+subtitleStyle.Render("Safe Driver Score"),
		renderReputationChart(ctx.Profile.WeeklyScores, innerWidth-4, max(3, min(6, height/4))),
	))

	var avax string
	switch {
	case t.balanceLoading:
		avax = renderLoadingPlaceholder("fetching balance")
	case t.balanceErr != nil:
		avax = errorStyle.Render("balance unavailable")
	case t.balance != nil:
		avax = titleStyle.Render(chain.FormatEther(t.balance) + " AVAX")
	default:
		avax = helpStyle.Render("-")
	}

	halfWidth := max(14, innerWidth/2-1)
	balances := lipgloss.JoinHorizontal(lipgloss.Top,
		sectionStyle.Width(halfWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			subtitleStyle.Render("FASTag Balance"),
			titleStyle.Render(formatINR(ctx.Profile.FastagINR)),
		)),
		sectionStyle.Width(halfWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			subtitleStyle.Render("Wallet Balance"),
			avax,
		)),
	)

	monitorLabel := "Secure Monitoring: standby"
	monitorPct := 0.0
	if t.driving {
		monitorLabel = "Secure Monitoring: active"
		monitorPct = 1.0
	}
	monitoring := sectionStyle.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("Device protection"),
		t.monitor.ViewAs(monitorPct),
		helpStyle.Render(monitorLabel),
	))

	button := buttonStyle.Render("START DRIVE")
	if t.driving {
		button = lipgloss.NewStyle().Inherit(buttonStyle).Background(ColorRed).Foreground(ColorWhite).Render("STOP DRIVE")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", reputation, balances, monitoring, "", button,
	)
}

// greeting returns "Good morning, <first name>!" for the hour of now.
func greeting(now time.Time, fullName string) string {
	part := "evening"
	switch h := now.Hour(); {
	case h < 12:
		part = "morning"
	case h < 17:
		part = "afternoon"
	}
	name := strings.Fields(fullName)
	if len(name) == 0 {
		return fmt.Sprintf("Good %s!", part)
	}
	return fmt.Sprintf("Good %s, %s!", part, name[0])
}

// formatINR renders an amount as ₹1,520.00.
func formatINR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "₹" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
