package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

type settingItem struct {
	section  string
	title    string
	subtitle string
	pref     string // toggle key; empty for navigation rows
	wallet   bool   // subtitle shows the connected wallet
}

var settingItems = []settingItem{
	{section: "AI & Safety", title: "AI Monitoring", subtitle: "Drowsiness and distraction alerts", pref: model.PrefAIMonitoring},
	{section: "AI & Safety", title: "Safety Notifications", subtitle: "Real-time driving alerts", pref: model.PrefSafetyNotifications},
	{section: "AI & Safety", title: "Driving Analytics", subtitle: "View your driving patterns"},
	{section: "Security", title: "Biometric Authentication", subtitle: "Use fingerprint or face unlock", pref: model.PrefBiometricAuth},
	{section: "Security", title: "Wallet Security", subtitle: "Manage wallet connections"},
	{section: "Security", title: "Privacy Settings", subtitle: "Control your data sharing"},
	{section: "Blockchain", title: "Connected Wallet", wallet: true},
	{section: "Blockchain", title: "Data Sharing", subtitle: "Share anonymized data for insights", pref: model.PrefDataSharing},
	{section: "Blockchain", title: "SBT Management", subtitle: "View your Soulbound Tokens"},
	{section: "Support", title: "Help & FAQ", subtitle: "Get answers to common questions"},
	{section: "Support", title: "Contact Support", subtitle: "Reach our support team"},
	{section: "Support", title: "About VahanChain", subtitle: "App version " + model.AppVersion},
}

// SettingsTab shows the profile and the settings toggles. Toggles are saved
// through the store; a failed save rolls the toggle back.
type SettingsTab struct {
	store   model.PreferenceStore
	prefs   model.Preferences
	cursor  int
	status  string
	loadErr error
}

func NewSettingsTab(store model.PreferenceStore) *SettingsTab {
	return &SettingsTab{store: store, prefs: model.Preferences{}}
}

func (t *SettingsTab) Tab() flow.Tab { return flow.TabSettings }

// Enabled returns the effective value of a toggle.
func (t *SettingsTab) Enabled(pref string) bool { return t.prefs.Get(pref) }

func (t *SettingsTab) Init(_ ViewContext) tea.Cmd {
	if t.store == nil {
		return nil
	}
	store := t.store
	return func() tea.Msg {
		prefs, err := store.Preferences()
		return preferencesMsg{prefs: prefs, err: err}
	}
}

func (t *SettingsTab) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case preferencesMsg:
		t.loadErr = msg.err
		if msg.err == nil {
			for k, v := range msg.prefs {
				t.prefs[k] = v
			}
		}

	case preferenceSavedMsg:
		if msg.err != nil {
			log.Error("saving preference failed", "key", msg.key, "err", msg.err)
			t.prefs[msg.key] = !msg.value
			t.status = "Could not save setting"
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			t.cursor = max(0, t.cursor-1)
		case key.Matches(msg, keys.Down):
			t.cursor = min(len(settingItems)-1, t.cursor+1)
		case key.Matches(msg, keys.Toggle):
			return t.activate()
		}
	}
	return nil
}

func (t *SettingsTab) activate() tea.Cmd {
	item := settingItems[t.cursor]
	if item.pref == "" {
		t.status = item.title + " is not available yet"
		return nil
	}

	value := !t.prefs.Get(item.pref)
	t.prefs[item.pref] = value
	t.status = ""
	if t.store == nil {
		return nil
	}
	store, k := t.store, item.pref
	return func() tea.Msg {
		return preferenceSavedMsg{key: k, value: value, err: store.SetPreference(k, value)}
	}
}

func renderToggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(ColorNavy).Background(ColorCyan).Render(" ON ")
	}
	return lipgloss.NewStyle().Foreground(ColorGray).Background(ColorDimGray).Render(" OFF ")
}

func (t *SettingsTab) View(ctx ViewContext, width, _ int) string {
	rowWidth := max(30, width-6)

	profile := sectionStyle.Width(rowWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(ctx.Profile.Name),
		subtitleStyle.Render(ctx.Profile.Email),
		accentStyle.Render(ctx.Profile.Level),
	))

	rows := []string{titleStyle.Render("Settings"), profile}
	if t.loadErr != nil {
		rows = append(rows, errorStyle.Render("Failed to load settings: "+t.loadErr.Error()))
	}

	section := ""
	for i, item := range settingItems {
		if item.section != section {
			section = item.section
			rows = append(rows, "", accentStyle.Render(section))
		}

		subtitle := item.subtitle
		if item.wallet {
			subtitle = wallet.ShortAddress(ctx.Address)
		}

		cursor := "  "
		if i == t.cursor {
			cursor = accentStyle.Render("› ")
		}
		left := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(item.title), subtitleStyle.Render(subtitle))

		right := helpStyle.Render("›")
		if item.pref != "" {
			right = renderToggle(t.prefs.Get(item.pref))
		}
		gap := max(1, rowWidth-lipgloss.Width(cursor)-lipgloss.Width(left)-lipgloss.Width(right))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cursor, left, lipgloss.NewStyle().Width(gap).Render(""), right))
	}

	if t.status != "" {
		rows = append(rows, "", warnStyle.Render(t.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
