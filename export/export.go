package export

import (
	"fmt"
	"os"

	"github.com/benchkit/tpcds-pipeline/database"
	"github.com/benchkit/tpcds-pipeline/file"
	"github.com/benchkit/tpcds-pipeline/log"
	"github.com/benchkit/tpcds-pipeline/model"
	"github.com/benchkit/tpcds-pipeline/util"
	"github.com/pkg/errors"
)

// Export writes every table in the database at dbPath to an individual
// compressed Parquet file under dir and returns the table list in catalog
// order. Existing files are kept unless overwrite is set.
func Export(dbPath, dir, compression string, overwrite bool) ([]model.Table, error) {
	log.Infof("exporting tables to Parquet at %s", dir)
	if err := os.MkdirAll(dir, os.FileMode(0766)); err != nil {
		return nil, err
	}
	db, err := database.NewReadOnly(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open duckdb read-only")
	}
	defer db.Close()
	names, err := db.Tables()
	if err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	if len(names) == 0 {
		return nil, errors.New("no tables found in DuckDB database, did generation succeed?")
	}
	tables := make([]model.Table, 0, len(names))
	for _, name := range names {
		t := model.NewTable(name, dir)
		tables = append(tables, t)
		if file.Exists(t.Parquet) && !overwrite {
			log.Debugf("%s exists, skipped", t.Parquet)
			continue
		}
		if _, err = db.Exec(CopyStmt(name, t.Parquet, compression)); err != nil {
			return nil, errors.Wrapf(err, "export table %s", name)
		}
		log.Infof("exported table %s", name)
	}
	return tables, nil
}

func CopyStmt(table, path, compression string) string {
	return fmt.Sprintf("COPY (SELECT * FROM %s) TO '%s' (FORMAT PARQUET, COMPRESSION %s);",
		util.QuoteIdent(table), util.QuoteLiteral(path), compression)
}
