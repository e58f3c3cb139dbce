package models

import "time"

// DatasetReference describes where the served records came from
type DatasetReference struct {
	Source   string `json:"source"`
	Records  int    `json:"records"`
	Entities int    `json:"entities"`
	LoadedAt int64  `json:"loadedAt"`
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Dataset   *DatasetReference `json:"dataset,omitempty"`
	Sentinels []string          `json:"sentinels"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Sentinels: []string{},
	}
}

// NewDatasetReference creates a DatasetReference with loadedAt in epoch milliseconds
func NewDatasetReference(source string, records, entities int, loadedAt time.Time) *DatasetReference {
	return &DatasetReference{
		Source:   source,
		Records:  records,
		Entities: entities,
		LoadedAt: loadedAt.UnixNano() / int64(time.Millisecond),
	}
}
