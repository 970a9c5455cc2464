package wizard

import (
	"fmt"
	"time"
)

type SourceTab string

const (
	SourceSample SourceTab = "sample"
	SourceUpload SourceTab = "upload"
)

func ParseSourceTab(s string) (SourceTab, error) {
	switch SourceTab(s) {
	case SourceSample, SourceUpload:
		return SourceTab(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
}

// sourceState remembers what each dataset source tab holds so a tab switch
// can re-emit it.
type sourceState struct {
	tab        SourceTab
	sampleID   string
	sampleName string
	upload     *UploadedFile
}

func (m *Machine) SourceTab() SourceTab { return m.source.tab }

// SelectSample picks a sample dataset. An empty id clears the selection.
func (m *Machine) SelectSample(id, name string) *DatasetSelection {
	m.source.tab = SourceSample
	m.source.upload = nil
	m.source.sampleID = id
	m.source.sampleName = name

	sel := m.sampleSelection()
	m.SelectDataset(sel)
	return sel
}

// AttachUpload stores an accepted upload and selects it.
func (m *Machine) AttachUpload(file *UploadedFile, now time.Time) *DatasetSelection {
	m.source.tab = SourceUpload
	m.source.sampleID = ""
	m.source.sampleName = ""
	m.source.upload = file

	sel := m.uploadSelection(now)
	m.SelectDataset(sel)
	return sel
}

func (m *Machine) RemoveUpload() {
	m.source.upload = nil
	m.SelectDataset(nil)
}

// SelectSourceTab switches between the sample and upload sources. The
// variant held by the other tab is discarded and whatever the new tab holds
// becomes the selection, possibly none. Naming the active tab changes
// nothing and returns the current selection.
func (m *Machine) SelectSourceTab(tab SourceTab, now time.Time) (*DatasetSelection, error) {
	if tab == m.source.tab {
		return m.dataset, nil
	}

	var sel *DatasetSelection
	switch tab {
	case SourceSample:
		m.source.upload = nil
		sel = m.sampleSelection()
	case SourceUpload:
		m.source.sampleID = ""
		m.source.sampleName = ""
		sel = m.uploadSelection(now)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, tab)
	}

	m.source.tab = tab
	m.SelectDataset(sel)
	return sel, nil
}

func (m *Machine) sampleSelection() *DatasetSelection {
	if m.source.sampleID == "" {
		return nil
	}
	return &DatasetSelection{
		ID:      m.source.sampleID,
		Name:    m.source.sampleName,
		Variant: VariantSample,
	}
}

func (m *Machine) uploadSelection(now time.Time) *DatasetSelection {
	if m.source.upload == nil {
		return nil
	}
	return &DatasetSelection{
		ID:      UploadID(now),
		Name:    m.source.upload.Name,
		Variant: VariantUploaded,
		File:    m.source.upload,
	}
}

// UploadID is the selection id an upload attached at now receives.
func UploadID(now time.Time) string {
	return fmt.Sprintf("uploaded-%d", now.UnixMilli())
}
