package flow

// Tab is a dashboard section.
type Tab int

const (
	TabDashboard Tab = iota
	TabDocuments
	TabSettings
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabDashboard, TabDocuments, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "dashboard"
	case TabDocuments:
		return "documents"
	case TabSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabDashboard:
		return "Home"
	case TabDocuments:
		return "Documents"
	case TabSettings:
		return "Settings"
	default:
		return "?"
	}
}

// TabSelector is a flat selector: any tab may follow any other.
type TabSelector struct {
	active Tab
}

func NewTabSelector() *TabSelector {
	return &TabSelector{active: TabDashboard}
}

func (s *TabSelector) Active() Tab {
	return s.active
}

// Select activates t. Unknown tabs are ignored.
func (s *TabSelector) Select(t Tab) bool {
	if t < TabDashboard || t > TabSettings {
		return false
	}
	s.active = t
	return true
}

// Next cycles forward, wrapping around.
func (s *TabSelector) Next() Tab {
	s.active = Tabs[(int(s.active)+1)%len(Tabs)]
	return s.active
}

// Prev cycles backward, wrapping around.
func (s *TabSelector) Prev() Tab {
	s.active = Tabs[(int(s.active)+len(Tabs)-1)%len(Tabs)]
	return s.active
}
