// Package wizard holds the build wizard state for one session: the four
// steps, the config/enhance/visualize tab order, the dataset and column
// selection and the simulated knowledge store build.
//
// A Machine is not safe for concurrent use; callers serialize access.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrBuildInProgress      = errors.New("knowledge store build already in progress")
	ErrAlreadyBuilt         = errors.New("knowledge store already built")
	ErrNotBuilt             = errors.New("knowledge store not built yet")
	ErrUnknownTab           = errors.New("unknown tab")
	ErrUnknownSource        = errors.New("unknown dataset source")
)

type Variant string

const (
	VariantSample   Variant = "sample"
	VariantUploaded Variant = "uploaded"
)

// UploadedFile is the raw blob behind an uploaded dataset selection.
type UploadedFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

type DatasetSelection struct {
	ID      string
	Name    string
	Variant Variant
	File    *UploadedFile
}

type Column struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	DataType string `json:"data_type"`
}

type BuildResult struct {
	ID        string
	CreatedAt time.Time
}

type Machine struct {
	currentStep int
	activeTab   Tab

	dataset        *DatasetSelection
	columns        []Column
	columnsLoading bool

	building   bool
	complete   bool
	refreshing bool
	result     *BuildResult
	generation uint64

	// step and tab to return to when a started build is aborted
	preBuildStep int
	preBuildTab  Tab

	source sourceState

	newResultID func() string
}

func New() *Machine {
	return &Machine{
		currentStep: 1,
		activeTab:   TabConfig,
		source:      sourceState{tab: SourceSample},
		newResultID: func() string { return "ks-" + uuid.NewString() },
	}
}

func (m *Machine) CurrentStep() int { return m.currentStep }

// Dataset returns the active selection, nil when none.
func (m *Machine) Dataset() *DatasetSelection { return m.dataset }

func (m *Machine) Columns() []Column {
	out := make([]Column, len(m.columns))
	copy(out, m.columns)
	return out
}

func (m *Machine) ColumnsLoading() bool { return m.columnsLoading }
func (m *Machine) Building() bool       { return m.building }
func (m *Machine) Complete() bool       { return m.complete }
func (m *Machine) Refreshing() bool     { return m.refreshing }

// Result returns the current build result, nil until a build completes.
func (m *Machine) Result() *BuildResult {
	if m.result == nil {
		return nil
	}
	r := *m.result
	return &r
}

func (m *Machine) DatasetValid() bool { return m.dataset != nil }

func (m *Machine) ColumnsValid() bool {
	for _, c := range m.columns {
		if c.Selected {
			return true
		}
	}
	return false
}

func (m *Machine) ConfigValid() bool { return m.DatasetValid() && m.ColumnsValid() }

// SelectDataset replaces the active selection. Columns and any build result
// are always reset; a non-nil selection moves the wizard to step 2.
func (m *Machine) SelectDataset(sel *DatasetSelection) {
	m.dataset = sel
	m.columns = nil
	m.columnsLoading = sel != nil && sel.Variant == VariantUploaded
	m.complete = false
	m.building = false
	m.refreshing = false
	m.result = nil
	m.generation++

	if sel != nil {
		m.currentStep = 2
	}
}

// SetColumns stores the column list. Including at least one column moves
// the wizard forward to step 3 but never back from a later step.
func (m *Machine) SetColumns(cols []Column) {
	m.columns = make([]Column, len(cols))
	copy(m.columns, cols)

	if m.ColumnsValid() {
		m.currentStep = max(m.currentStep, 3)
	}
}

// ApplyParsedColumns stores columns produced for datasetID. Results for a
// selection that has since been replaced are dropped.
func (m *Machine) ApplyParsedColumns(datasetID string, cols []Column) bool {
	if m.dataset == nil || m.dataset.ID != datasetID {
		return false
	}
	m.columnsLoading = false
	m.SetColumns(cols)
	return true
}

// ToggleColumn flips the inclusion flag of the named column.
func (m *Machine) ToggleColumn(name string) bool {
	idx := -1
	for i, c := range m.columns {
		if c.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	cols := m.Columns()
	cols[idx].Selected = !cols[idx].Selected
	m.SetColumns(cols)
	return true
}

// Validate reports why a build cannot start, nil when it can.
func (m *Machine) Validate() error {
	if !m.DatasetValid() {
		return fmt.Errorf("%w: no dataset selected", ErrInvalidConfiguration)
	}
	if !m.ColumnsValid() {
		return fmt.Errorf("%w: no column selected", ErrInvalidConfiguration)
	}
	return nil
}

// StartBuild enters the building state and switches to the visualize tab.
// The returned generation must be handed back to CompleteBuild.
func (m *Machine) StartBuild() (uint64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if m.building {
		return 0, ErrBuildInProgress
	}
	if m.complete {
		return 0, ErrAlreadyBuilt
	}

	m.generation++
	m.building = true
	m.preBuildStep = m.currentStep
	m.preBuildTab = m.activeTab
	m.currentStep = 4
	m.activeTab = TabVisualize
	return m.generation, nil
}

// CompleteBuild finishes the build started with generation. A build that
// was superseded by a new dataset selection is ignored.
func (m *Machine) CompleteBuild(generation uint64, now time.Time) bool {
	if !m.building || generation != m.generation {
		return false
	}
	m.building = false
	m.complete = true
	m.result = &BuildResult{ID: m.newResultID(), CreatedAt: now}
	return true
}

// AbortBuild undoes StartBuild for a build whose job never got queued,
// putting the wizard back on the step and tab it was on.
func (m *Machine) AbortBuild(generation uint64) bool {
	if !m.building || generation != m.generation {
		return false
	}
	m.building = false
	m.currentStep = m.preBuildStep
	m.activeTab = m.preBuildTab
	return true
}

// RefreshResult stamps a new result identifier on a completed build.
func (m *Machine) RefreshResult(now time.Time) (BuildResult, error) {
	if !m.complete {
		return BuildResult{}, ErrNotBuilt
	}
	m.refreshing = false
	m.result = &BuildResult{ID: m.newResultID(), CreatedAt: now}
	return *m.result, nil
}

// BeginRefresh marks a delayed visualization refresh as pending. The
// returned generation must be handed back to FinishRefresh.
func (m *Machine) BeginRefresh() (uint64, error) {
	if !m.complete {
		return 0, ErrNotBuilt
	}
	m.refreshing = true
	return m.generation, nil
}

// AbortRefresh drops a pending refresh started with generation.
func (m *Machine) AbortRefresh(generation uint64) {
	if generation == m.generation {
		m.refreshing = false
	}
}

// FinishRefresh completes a refresh unless the build it was started for has
// since been replaced.
func (m *Machine) FinishRefresh(generation uint64, now time.Time) (BuildResult, bool) {
	if !m.refreshing || generation != m.generation {
		return BuildResult{}, false
	}
	r, err := m.RefreshResult(now)
	return r, err == nil
}
