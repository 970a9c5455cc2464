package wizard

const (
	StepDataset   = 1
	StepColumns   = 2
	StepEnhance   = 3
	StepVisualize = 4
)

var stepTitles = map[int]string{
	StepDataset:   "Select Dataset",
	StepColumns:   "Choose Columns",
	StepEnhance:   "Enhance Text",
	StepVisualize: "Explore Knowledge",
}

type Step struct {
	Number    int
	Title     string
	Unlocked  bool
	Completed bool
	Current   bool
}

// Unlocked reports whether step n may be entered. Every answer is derived
// from the current selection and build state.
func (m *Machine) Unlocked(n int) bool {
	switch n {
	case StepDataset:
		return true
	case StepColumns:
		return m.DatasetValid()
	case StepEnhance:
		return m.ColumnsValid()
	case StepVisualize:
		return m.complete
	default:
		return false
	}
}

// CompletedSteps lists the step numbers whose work is done. Step 3 has no
// completion predicate of its own.
func (m *Machine) CompletedSteps() []int {
	done := make([]int, 0, 3)
	if m.DatasetValid() {
		done = append(done, StepDataset)
	}
	if m.ColumnsValid() {
		done = append(done, StepColumns)
	}
	if m.complete {
		done = append(done, StepVisualize)
	}
	return done
}

func (m *Machine) Steps() []Step {
	completed := make(map[int]bool)
	for _, n := range m.CompletedSteps() {
		completed[n] = true
	}

	steps := make([]Step, 0, len(stepTitles))
	for n := StepDataset; n <= StepVisualize; n++ {
		steps = append(steps, Step{
			Number:    n,
			Title:     stepTitles[n],
			Unlocked:  m.Unlocked(n),
			Completed: completed[n],
			Current:   m.currentStep == n,
		})
	}
	return steps
}

// GoToStep moves to step n when it is unlocked. Locked and unknown steps
// leave the machine untouched and return false.
func (m *Machine) GoToStep(n int) bool {
	if !m.Unlocked(n) {
		return false
	}
	m.currentStep = n
	return true
}
