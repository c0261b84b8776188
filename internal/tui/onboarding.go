package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vahanchain/vahanchain/internal/flow"
)

type onboardingStep struct {
	phase       flow.Phase
	icon        string
	title       string
	description string
	button      string
}

var onboardingSteps = []onboardingStep{
	{
		phase:       flow.PhaseOnboarding1,
		icon:        "◉",
		title:       "AI-Powered Safety",
		description: "Welcome to VahanChain. Our AI co-pilot watches for drowsiness, distraction, and more, keeping you safe on every journey.",
		button:      "CONTINUE",
	},
	{
		phase:       flow.PhaseOnboarding2,
		icon:        "⬡",
		title:       "Own Your Reputation",
		description: "We use the Avalanche blockchain to build your permanent, on-chain 'Safe Driver' reputation. You own and control your data.",
		button:      "CONTINUE",
	},
	{
		phase:       flow.PhaseOnboarding3,
		icon:        "◎",
		title:       "Hands-Free Assistant",
		description: "Go completely hands-free with our AI voice assistant for calls, navigation, and more.",
		button:      "GET STARTED",
	},
}

// OnboardingPage is one of the three introduction screens.
type OnboardingPage struct {
	index    int
	step     onboardingStep
	finished bool
}

// NewOnboardingPages returns the three onboarding pages in order.
func NewOnboardingPages() []*OnboardingPage {
	pages := make([]*OnboardingPage, len(onboardingSteps))
	for i, s := range onboardingSteps {
		pages[i] = &OnboardingPage{index: i, step: s}
	}
	return pages
}

func (p *OnboardingPage) Phase() flow.Phase { return p.step.phase }

func (p *OnboardingPage) Init() tea.Cmd { return nil }

func (p *OnboardingPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || p.finished {
		return nil, nil
	}
	if key.Matches(km, keys.Continue) || key.Matches(km, keys.NextTab) {
		p.finished = true
		return nil, done
	}
	return nil, nil
}

func (p *OnboardingPage) View(width, height int) string {
	textWidth := 50
	if width > 0 && width-8 < textWidth {
		textWidth = max(20, width-8)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		accentStyle.Render(p.step.icon),
		"",
		titleStyle.Render(p.step.title),
		"",
		subtitleStyle.Width(textWidth).Align(lipgloss.Center).Render(p.step.description),
		"",
		renderDots(p.index, len(onboardingSteps)),
		"",
		buttonStyle.Render(p.step.button),
		helpStyle.Render("enter: continue • q: quit"),
	)
	return center(width, height, content)
}
