package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// SplashPage fills a progress bar in fixed steps, holds briefly at 100%,
// then finishes.
type SplashPage struct {
	timings  Timings
	bar      progress.Model
	percent  int
	finished bool
}

func NewSplashPage(t Timings) *SplashPage {
	if t.SplashIncrement <= 0 {
		t.SplashIncrement = 1
	}
	return &SplashPage{
		timings: t,
		bar: progress.New(
			progress.WithGradient(string(ColorCyanDark), string(ColorCyan)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
	}
}

func (p *SplashPage) Phase() flow.Phase { return flow.PhaseSplash }

func (p *SplashPage) Percent() int { return p.percent }

func (p *SplashPage) Init() tea.Cmd {
	return p.tick()
}

func (p *SplashPage) tick() tea.Cmd {
	return tea.Tick(p.timings.SplashStep, func(time.Time) tea.Msg { return splashTickMsg{} })
}

func (p *SplashPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg.(type) {
	case splashTickMsg:
		if p.percent >= 100 {
			return nil, nil
		}
		p.percent = min(100, p.percent+p.timings.SplashIncrement)
		if p.percent < 100 {
			return p.tick(), nil
		}
		return tea.Tick(p.timings.SplashHold, func(time.Time) tea.Msg { return splashHoldMsg{} }), nil

	case splashHoldMsg:
		if p.finished || p.percent < 100 {
			return nil, nil
		}
		p.finished = true
		return nil, done
	}
	return nil, nil
}

func (p *SplashPage) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		renderBrand(),
		subtitleStyle.Render("Drive Safe. Own Your Reputation."),
		"",
		p.bar.ViewAs(float64(p.percent)/100),
		helpStyle.Render(progressLabel(p.percent)),
	)
	return center(width, height, content)
}

func progressLabel(pct int) string {
	if pct >= 100 {
		return "Ready"
	}
	return "Loading..."
}
