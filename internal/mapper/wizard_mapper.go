package mapper

import (
	"knowex-be/internal/dto"
	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/wizard"
)

type WizardMapper struct{}

func NewWizardMapper() *WizardMapper {
	return &WizardMapper{}
}

// ToStateResponse snapshots m. The build label depends on the session's
// enhancement settings, so the store is read too.
func (mp *WizardMapper) ToStateResponse(m *wizard.Machine, e *enhancement.Store) *dto.WizardStateResponse {
	return &dto.WizardStateResponse{
		CurrentStep: m.CurrentStep(),
		Steps:       mp.ToStepResponses(m.Steps()),
		Tabs:        mp.ToTabNavigationResponse(m.Navigation()),
		Source:      string(m.SourceTab()),
		Dataset:     mp.ToDatasetResponse(m.Dataset()),
		Columns:     mp.ToColumnsResponse(m),
		ConfigValid: m.ConfigValid(),
		Build:       mp.ToBuildStateResponse(m, e),
	}
}

func (mp *WizardMapper) ToStepResponses(steps []wizard.Step) []dto.StepResponse {
	out := make([]dto.StepResponse, len(steps))
	for i, s := range steps {
		out[i] = dto.StepResponse{
			Number:    s.Number,
			Title:     s.Title,
			Unlocked:  s.Unlocked,
			Completed: s.Completed,
			Current:   s.Current,
		}
	}
	return out
}

func (mp *WizardMapper) ToTabNavigationResponse(n wizard.TabNavigation) dto.TabNavigationResponse {
	return dto.TabNavigationResponse{
		Active:          string(n.Active),
		Index:           n.Index,
		IsFirst:         n.IsFirst,
		IsLast:          n.IsLast,
		NextLabel:       n.NextLabel,
		CompleteEnabled: n.CompleteEnabled,
	}
}

func (mp *WizardMapper) ToDatasetResponse(sel *wizard.DatasetSelection) *dto.DatasetSelectionResponse {
	if sel == nil {
		return nil
	}
	res := &dto.DatasetSelectionResponse{
		Id:   sel.ID,
		Name: sel.Name,
		Type: string(sel.Variant),
	}
	if sel.File != nil {
		res.FileName = sel.File.Name
		res.FileSize = sel.File.Size
	}
	return res
}

func (mp *WizardMapper) ToColumnResponses(cols []wizard.Column) []dto.ColumnResponse {
	out := make([]dto.ColumnResponse, len(cols))
	for i, c := range cols {
		out[i] = dto.ColumnResponse{Name: c.Name, Selected: c.Selected, DataType: c.DataType}
	}
	return out
}

func (mp *WizardMapper) ToColumnsResponse(m *wizard.Machine) dto.ColumnsResponse {
	return dto.ColumnsResponse{
		Loading: m.ColumnsLoading(),
		Columns: mp.ToColumnResponses(m.Columns()),
		Valid:   m.ColumnsValid(),
	}
}

func (mp *WizardMapper) ToBuildStateResponse(m *wizard.Machine, e *enhancement.Store) dto.BuildStateResponse {
	title := ""
	if t, ok := e.Active(); ok {
		title = t.Title()
	}

	res := dto.BuildStateResponse{
		Building: m.Building(),
		Complete: m.Complete(),
		Enabled:  m.BuildEnabled(),
		Label:    m.BuildLabel(e.Enabled(), title),
	}
	if r := m.Result(); r != nil {
		res.Result = &dto.BuildResultResponse{Id: r.ID, CreatedAt: r.CreatedAt}
	}
	return res
}

func (mp *WizardMapper) ToVisualizationsResponse(m *wizard.Machine) *dto.VisualizationsResponse {
	res := &dto.VisualizationsResponse{
		Refreshing: m.Refreshing(),
		Views:      make([]dto.VisualizationResponse, 0, len(wizard.VisualizationViews)),
	}
	if r := m.Result(); r != nil {
		res.KnowledgeStoreId = r.ID
	}
	for _, view := range wizard.VisualizationViews {
		v := m.Visualization(view)
		res.Views = append(res.Views, dto.VisualizationResponse{
			View:    v.View,
			Status:  string(v.Status),
			Message: v.Message,
			Url:     v.URL,
		})
	}
	return res
}
