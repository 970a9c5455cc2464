package wizard

import "fmt"

type Tab string

const (
	TabConfig    Tab = "config"
	TabEnhance   Tab = "enhance"
	TabVisualize Tab = "visualize"
)

// TabOrder is the fixed navigation order of the build page.
var TabOrder = []Tab{TabConfig, TabEnhance, TabVisualize}

func ParseTab(s string) (Tab, error) {
	for _, t := range TabOrder {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

func tabIndex(t Tab) int {
	for i, o := range TabOrder {
		if o == t {
			return i
		}
	}
	return -1
}

func (m *Machine) ActiveTab() Tab { return m.activeTab }

func (m *Machine) SetTab(t Tab) error {
	if tabIndex(t) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	m.activeTab = t
	return nil
}

// NextTab advances one tab. On the last tab it calls onComplete instead,
// when one is given, and reports true.
func (m *Machine) NextTab(onComplete func()) bool {
	i := tabIndex(m.activeTab)
	if i < len(TabOrder)-1 {
		m.activeTab = TabOrder[i+1]
		return false
	}
	if onComplete != nil {
		onComplete()
		return true
	}
	return false
}

// PreviousTab retreats one tab and stops at the first.
func (m *Machine) PreviousTab() {
	if i := tabIndex(m.activeTab); i > 0 {
		m.activeTab = TabOrder[i-1]
	}
}

// TabNavigation describes the previous/next controls for the active tab.
type TabNavigation struct {
	Active          Tab
	Index           int
	IsFirst         bool
	IsLast          bool
	NextLabel       string
	CompleteEnabled bool
}

// Navigation derives the control state. Only the visualize tab offers a
// completion action and only once a build has finished; the config tab
// enables its control as soon as a column is included.
func (m *Machine) Navigation() TabNavigation {
	i := tabIndex(m.activeTab)
	nav := TabNavigation{
		Active:    m.activeTab,
		Index:     i,
		IsFirst:   i == 0,
		IsLast:    i == len(TabOrder)-1,
		NextLabel: "Next",
	}

	switch m.activeTab {
	case TabConfig:
		nav.CompleteEnabled = m.ColumnsValid()
	case TabVisualize:
		nav.CompleteEnabled = m.complete
		if m.complete {
			nav.NextLabel = "Complete"
		}
	}
	return nav
}
