package entity

import "knowex-be/pkg/wizard"

// SampleDataset is a dataset offered by the wizard's sample source tab.
type SampleDataset struct {
	Id          string
	Name        string
	Description string
	Columns     []wizard.Column
}
