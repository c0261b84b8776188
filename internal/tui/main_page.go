package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

// SessionRecorder remembers wallets that completed the connection flow.
type SessionRecorder interface {
	RecordWalletSession(address string, chainID int64) error
}

// failureReporter is implemented by providers that keep the reason of the
// last failed connection attempt.
type failureReporter interface {
	LastError() string
}

// MainDeps are the collaborators of the main page.
type MainDeps struct {
	Provider   wallet.Provider
	Documents  model.DocumentStore
	Prefs      model.PreferenceStore
	Sessions   SessionRecorder
	Balances   BalanceFetcher
	Timings    Timings
	ChainID    int64
	Profile    model.Profile
	BridgeAddr string
}

// walletSignalMsg is a status read from the provider subscription.
type walletSignalMsg struct {
	sig flow.Signals
}

// MainPage hosts the wallet sub-flow and, once it reaches the dashboard
// stage, the tab panels.
type MainPage struct {
	deps MainDeps

	wallet *flow.WalletFlow
	tabs   *flow.TabSelector

	sub         <-chan flow.Signals
	unsubscribe func()

	pairing    *wallet.Pairing
	connecting bool
	spin       spinner.Model
	modal      Modal

	panels []TabPanel
}

func NewMainPage(deps MainDeps) *MainPage {
	p := &MainPage{
		deps:   deps,
		spin:   newSpinner(),
		wallet: flow.NewWalletFlow(),
		tabs:   flow.NewTabSelector(),
	}
	p.panels = []TabPanel{
		NewDashboardTab(deps.Balances, deps.Timings.WalletTimeout),
		NewDocumentsTab(deps.Documents),
		NewSettingsTab(deps.Prefs),
	}
	return p
}

func (p *MainPage) Phase() flow.Phase { return flow.PhaseMain }

// Attach binds the page to the wallet sub-flow carried by the main state.
func (p *MainPage) Attach(s flow.State) {
	if s.Wallet() != nil {
		p.wallet = s.Wallet()
	}
	if s.Tabs() != nil {
		p.tabs = s.Tabs()
	}
}

// Stage returns the wallet sub-flow stage.
func (p *MainPage) Stage() flow.Stage { return p.wallet.Stage() }

// ActiveTab returns the selected dashboard tab.
func (p *MainPage) ActiveTab() flow.Tab { return p.tabs.Active() }

// Modal returns the notice currently shown, if any.
func (p *MainPage) Modal() Modal { return p.modal }

// Panel returns the panel for tab t.
func (p *MainPage) Panel(t flow.Tab) TabPanel {
	for _, panel := range p.panels {
		if panel.Tab() == t {
			return panel
		}
	}
	return nil
}

func (p *MainPage) Init() tea.Cmd {
	var cmds []tea.Cmd
	if p.deps.Provider != nil && p.sub == nil {
		p.sub, p.unsubscribe = p.deps.Provider.Subscribe()
		cmds = append(cmds, listen(p.sub))
		cmds = append(cmds, p.observe(p.deps.Provider.Status()))
	}
	return tea.Batch(cmds...)
}

// Close ends the provider subscription.
func (p *MainPage) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

func listen(ch <-chan flow.Signals) tea.Cmd {
	return func() tea.Msg {
		sig, ok := <-ch
		if !ok {
			return walletClosedMsg{}
		}
		return walletSignalMsg{sig: sig}
	}
}

func (p *MainPage) viewContext(width, height int) ViewContext {
	sig := p.wallet.Signals()
	return ViewContext{
		Width:           width,
		Height:          height,
		Address:         sig.Address,
		ChainID:         sig.ChainID,
		ExpectedChainID: p.deps.ChainID,
		Profile:         p.deps.Profile,
	}
}

// observe feeds a status change into the sub-flow and schedules whatever
// the new stage needs.
func (p *MainPage) observe(sig flow.Signals) tea.Cmd {
	prev := p.wallet.Stage()
	stage, changed := p.wallet.Observe(sig)
	if !changed {
		return nil
	}
	log.Info("wallet stage", "from", prev, "to", stage)

	switch stage {
	case flow.StageInitial:
		p.pairing = nil
		p.connecting = false
		if fr, ok := p.deps.Provider.(failureReporter); ok {
			if reason := fr.LastError(); reason != "" {
				p.modal = NewErrorNotice("wallet-failed", "Connection Failed", reason)
			}
		}
		return nil
	case flow.StageConnecting:
		return p.spin.Tick
	case flow.StageLoading:
		tok := p.wallet.Token()
		return tea.Batch(
			tea.Tick(p.deps.Timings.LoadingDuration, func(time.Time) tea.Msg { return loadingDoneMsg{token: tok} }),
			p.spin.Tick,
		)
	}
	return nil
}

func (p *MainPage) openConnect() tea.Cmd {
	provider, timeout := p.deps.Provider, p.deps.Timings.WalletTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		pairing, err := provider.OpenConnectDialog(ctx)
		return pairingMsg{pairing: pairing, err: err}
	}
}

func (p *MainPage) recordSession() tea.Cmd {
	if p.deps.Sessions == nil {
		return nil
	}
	rec, sig := p.deps.Sessions, p.wallet.Signals()
	return func() tea.Msg {
		return sessionRecordedMsg{err: rec.RecordWalletSession(sig.Address, sig.ChainID)}
	}
}

func (p *MainPage) initPanels() tea.Cmd {
	ctx := p.viewContext(0, 0)
	cmds := make([]tea.Cmd, 0, len(p.panels))
	for _, panel := range p.panels {
		cmds = append(cmds, panel.Init(ctx))
	}
	return tea.Batch(cmds...)
}

func (p *MainPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	// provider signals are applied even while a notice is open
	switch msg := msg.(type) {
	case walletSignalMsg:
		return tea.Batch(p.observe(msg.sig), listen(p.sub)), nil
	case walletClosedMsg:
		log.Warn("wallet provider subscription closed")
		return nil, nil
	case loadingDoneMsg:
		if p.wallet.LoadingComplete(msg.token) {
			log.Info("wallet identity ready", "address", wallet.ShortAddress(p.wallet.Signals().Address))
			return p.recordSession(), nil
		}
		return nil, nil
	case sessionRecordedMsg:
		if msg.err != nil {
			log.Warn("recording wallet session failed", "err", msg.err)
		}
		return nil, nil
	case spinner.TickMsg:
		if s := p.wallet.Stage(); s != flow.StageConnecting && s != flow.StageLoading {
			return nil, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd, nil
	case pairingMsg:
		p.connecting = false
		if msg.err != nil {
			log.Warn("open connect dialog failed", "err", msg.err)
			p.modal = NewErrorNotice("wallet-error", "Connection Failed", msg.err.Error())
			return nil, nil
		}
		pairing := msg.pairing
		p.pairing = &pairing
		return nil, nil
	}

	km, isKey := msg.(tea.KeyMsg)
	if p.modal != nil && isKey {
		pop, cmd := p.modal.Update(msg)
		if pop {
			p.modal = nil
		}
		return cmd, nil
	}

	switch p.wallet.Stage() {
	case flow.StageInitial:
		if isKey && key.Matches(km, keys.Connect) && !p.connecting && p.deps.Provider != nil {
			p.connecting = true
			return p.openConnect(), nil
		}
	case flow.StageSuccess:
		if isKey && key.Matches(km, keys.Continue) && p.wallet.Proceed() {
			log.Info("entering dashboard")
			return p.initPanels(), nil
		}
	case flow.StageDashboard:
		if isKey {
			if p.handleTabKey(km) {
				return nil, nil
			}
			if panel := p.Panel(p.tabs.Active()); panel != nil {
				return panel.Update(msg), nil
			}
			return nil, nil
		}
	}

	if !isKey {
		cmds := make([]tea.Cmd, 0, len(p.panels))
		for _, panel := range p.panels {
			cmds = append(cmds, panel.Update(msg))
		}
		return tea.Batch(cmds...), nil
	}
	return nil, nil
}

func (p *MainPage) handleTabKey(km tea.KeyMsg) bool {
	switch {
	case key.Matches(km, keys.DashboardTab):
		p.tabs.Select(flow.TabDashboard)
	case key.Matches(km, keys.DocumentsTab):
		p.tabs.Select(flow.TabDocuments)
	case key.Matches(km, keys.SettingsTab):
		p.tabs.Select(flow.TabSettings)
	case key.Matches(km, keys.NextTab):
		p.tabs.Next()
	case key.Matches(km, keys.PrevTab):
		p.tabs.Prev()
	default:
		return false
	}
	return true
}

func (p *MainPage) View(width, height int) string {
	if p.modal != nil {
		return p.modal.View(width, height)
	}

	switch p.wallet.Stage() {
	case flow.StageConnecting:
		return center(width, height, lipgloss.JoinVertical(lipgloss.Center,
			p.spin.View()+" "+titleStyle.Render("Connecting..."),
			subtitleStyle.Render("Approve the connection in your wallet"),
		))
	case flow.StageLoading:
		return p.viewLoading(width, height)
	case flow.StageSuccess:
		return p.viewSuccess(width, height)
	case flow.StageDashboard:
		return p.viewDashboard(width, height)
	default:
		return p.viewConnect(width, height)
	}
}

func (p *MainPage) viewConnect(width, height int) string {
	lines := []string{
		renderBrand(),
		"",
		titleStyle.Render("Connect Your Wallet"),
		subtitleStyle.Width(50).Align(lipgloss.Center).Render("Link your Avalanche wallet to start building your on-chain Safe Driver reputation."),
		"",
	}
	if p.connecting {
		lines = append(lines, disabledButtonStyle.Render("OPENING..."))
	} else {
		lines = append(lines, buttonStyle.Render("CONNECT WALLET"))
	}
	if p.pairing != nil {
		lines = append(lines, "",
			subtitleStyle.Render("Waiting for your wallet. Pairing URI:"),
			accentStyle.Render(truncate(p.pairing.URI, max(20, width-8))),
		)
		if p.deps.BridgeAddr != "" {
			lines = append(lines, helpStyle.Render("wallet bridge: http://"+p.deps.BridgeAddr))
		}
	}
	lines = append(lines, "", helpStyle.Render("c: connect • q: quit"))
	return center(width, height, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (p *MainPage) viewLoading(width, height int) string {
	return center(width, height, lipgloss.JoinVertical(lipgloss.Center,
		p.spin.View(),
		"",
		titleStyle.Render("Initializing your On-Chain Identity..."),
		subtitleStyle.Width(50).Align(lipgloss.Center).Render(`Minting your "Safe Driver" SBT on the Avalanche blockchain. Please wait.`),
	))
}

func (p *MainPage) viewSuccess(width, height int) string {
	sig := p.wallet.Signals()
	network := fmt.Sprintf("%s (Chain ID: %d)", model.NetworkName(sig.ChainID), sig.ChainID)

	lines := []string{
		lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render("✓"),
		"",
		titleStyle.Render("Wallet Connected!"),
		"",
		subtitleStyle.Render("Address: ") + accentStyle.Render(wallet.ShortAddress(sig.Address)),
		subtitleStyle.Render("Network: ") + titleStyle.Render(network),
	}
	if p.deps.ChainID != 0 && sig.ChainID != p.deps.ChainID {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("⚠ Please switch to %s", model.NetworkName(p.deps.ChainID))))
	}
	lines = append(lines,
		"",
		lipgloss.NewStyle().Foreground(ColorGreen).Render("Safe Driver SBT Ready"),
		"",
		buttonStyle.Render("GO TO DASHBOARD"),
		helpStyle.Render("enter: continue • q: quit"),
	)
	return center(width, height, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (p *MainPage) viewDashboard(width, height int) string {
	var tabs []string
	for _, t := range flow.Tabs {
		label := fmt.Sprintf(" %d %s ", int(t)+1, t.Title())
		if t == p.tabs.Active() {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(ColorNavy).Background(ColorCyan).Bold(true).Render(label))
		} else {
			tabs = append(tabs, subtitleStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	help := helpStyle.Render("1-3/tab: switch • ↑/↓: move • space: toggle • s: drive • q: quit")

	bodyHeight := max(1, height-lipgloss.Height(bar)-lipgloss.Height(help)-1)
	body := ""
	if panel := p.Panel(p.tabs.Active()); panel != nil {
		body = panel.View(p.viewContext(width, bodyHeight), width, bodyHeight)
	}
	body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, help)
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
