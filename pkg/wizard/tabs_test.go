package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabNavigationBounds(t *testing.T) {
	m := New()

	m.PreviousTab()
	assert.Equal(t, TabConfig, m.ActiveTab())

	assert.False(t, m.NextTab(nil))
	assert.Equal(t, TabEnhance, m.ActiveTab())
	assert.False(t, m.NextTab(nil))
	assert.Equal(t, TabVisualize, m.ActiveTab())

	for i := 0; i < 3; i++ {
		assert.False(t, m.NextTab(nil))
		assert.Equal(t, TabVisualize, m.ActiveTab())
	}

	m.PreviousTab()
	m.PreviousTab()
	m.PreviousTab()
	assert.Equal(t, TabConfig, m.ActiveTab())
}

func TestNextTabOnLastInvokesCompletion(t *testing.T) {
	m := New()
	require.NoError(t, m.SetTab(TabVisualize))

	calls := 0
	fired := m.NextTab(func() { calls++ })

	assert.True(t, fired)
	assert.Equal(t, 1, calls)
	assert.Equal(t, TabVisualize, m.ActiveTab())
}

func TestNextTabBeforeLastSkipsCompletion(t *testing.T) {
	m := New()

	calls := 0
	m.NextTab(func() { calls++ })

	assert.Zero(t, calls)
	assert.Equal(t, TabEnhance, m.ActiveTab())
}

func TestSetTab(t *testing.T) {
	m := New()

	assert.ErrorIs(t, m.SetTab("summary"), ErrUnknownTab)
	assert.Equal(t, TabConfig, m.ActiveTab())

	tab, err := ParseTab("enhance")
	require.NoError(t, err)
	require.NoError(t, m.SetTab(tab))
	assert.Equal(t, TabEnhance, m.ActiveTab())

	_, err = ParseTab("Enhance")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestNavigation(t *testing.T) {
	m := New()

	nav := m.Navigation()
	assert.True(t, nav.IsFirst)
	assert.False(t, nav.IsLast)
	assert.False(t, nav.CompleteEnabled)
	assert.Equal(t, "Next", nav.NextLabel)

	selectedSample(m)
	assert.True(t, m.Navigation().CompleteEnabled)

	gen, err := m.StartBuild()
	require.NoError(t, err)
	nav = m.Navigation()
	assert.True(t, nav.IsLast)
	assert.False(t, nav.CompleteEnabled)
	assert.Equal(t, "Next", nav.NextLabel)

	m.CompleteBuild(gen, time.Now())
	nav = m.Navigation()
	assert.True(t, nav.CompleteEnabled)
	assert.Equal(t, "Complete", nav.NextLabel)
	assert.Equal(t, 2, nav.Index)
}

func TestBuildLabel(t *testing.T) {
	m := New()
	assert.Equal(t, "Build Text Knowledge Store", m.BuildLabel(false, ""))
	assert.Equal(t, "Build with Text Enhancement", m.BuildLabel(true, ""))
	assert.Equal(t, "Build with Entity Extraction", m.BuildLabel(true, "Entity Extraction"))
	assert.Equal(t, "Build Text Knowledge Store", m.BuildLabel(false, "Entity Extraction"))
	assert.False(t, m.BuildEnabled())

	selectedSample(m)
	assert.True(t, m.BuildEnabled())
	gen, _ := m.StartBuild()
	assert.Equal(t, "Building...", m.BuildLabel(true, "Entity Extraction"))
	assert.False(t, m.BuildEnabled())

	m.CompleteBuild(gen, time.Now())
	assert.Equal(t, "Text Knowledge Store Built", m.BuildLabel(true, ""))
	assert.False(t, m.BuildEnabled())
}

func TestVisualization(t *testing.T) {
	m := New()
	assert.Equal(t, VisualizationIdle, m.Visualization("clusters").Status)

	selectedSample(m)
	gen, _ := m.StartBuild()
	assert.Equal(t, VisualizationProcessing, m.Visualization("clusters").Status)

	m.CompleteBuild(gen, time.Now())
	v := m.Visualization("insights")
	assert.Equal(t, VisualizationReady, v.Status)
	assert.Equal(t, "https://placeholder.com/dash-app/insights/"+m.Result().ID, v.URL)
}
