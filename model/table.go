package model

import (
	"path/filepath"

	"github.com/benchkit/tpcds-pipeline/consts"
)

// Table is one generated benchmark table and its exported Parquet artifact.
type Table struct {
	Name    string
	Parquet string
}

func NewTable(name, dir string) Table {
	return Table{
		Name:    name,
		Parquet: filepath.Join(dir, name+consts.ParquetSuffix),
	}
}

func (t Table) String() string {
	return t.Name
}

// TableID is the fully-qualified BigQuery table identifier.
func (t Table) TableID(project, dataset string) string {
	return project + "." + dataset + "." + t.Name
}
