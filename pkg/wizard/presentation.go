package wizard

import "fmt"

// BuildLabel is the caption of the build action. techniqueTitle is empty
// when enhancement is enabled without a technique chosen.
func (m *Machine) BuildLabel(enhancementEnabled bool, techniqueTitle string) string {
	switch {
	case m.complete:
		return "Text Knowledge Store Built"
	case m.building:
		return "Building..."
	case enhancementEnabled && techniqueTitle != "":
		return "Build with " + techniqueTitle
	case enhancementEnabled:
		return "Build with Text Enhancement"
	default:
		return "Build Text Knowledge Store"
	}
}

// BuildEnabled mirrors the disabled state of the build action.
func (m *Machine) BuildEnabled() bool {
	return !m.building && !m.complete && m.ConfigValid()
}

type VisualizationStatus string

const (
	VisualizationIdle       VisualizationStatus = "idle"
	VisualizationProcessing VisualizationStatus = "processing"
	VisualizationReady      VisualizationStatus = "ready"
)

// Visualization views offered for a knowledge store.
var VisualizationViews = []string{"clusters", "insights"}

const visualizationBaseURL = "https://placeholder.com/dash-app"

type Visualization struct {
	View    string
	Status  VisualizationStatus
	Message string
	URL     string
}

func VisualizationURL(view, storeID string) string {
	return fmt.Sprintf("%s/%s/%s", visualizationBaseURL, view, storeID)
}

// Visualization describes what the visualizer panel shows for view.
func (m *Machine) Visualization(view string) Visualization {
	v := Visualization{View: view}
	switch {
	case m.building:
		v.Status = VisualizationProcessing
		v.Message = "We're processing your data and generating visualizations. This may take a moment..."
	case m.complete && m.result != nil:
		v.Status = VisualizationReady
		v.URL = VisualizationURL(view, m.result.ID)
	default:
		v.Status = VisualizationIdle
		v.Message = "Build your knowledge store first to generate visualizations"
	}
	return v
}
