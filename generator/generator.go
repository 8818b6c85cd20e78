package generator

import (
	"fmt"

	"github.com/benchkit/tpcds-pipeline/database"
	"github.com/benchkit/tpcds-pipeline/log"
	"github.com/benchkit/tpcds-pipeline/util"
	"github.com/pkg/errors"
)

// Generate populates the DuckDB database at dbPath with TPC-DS tables at
// scale factor sf via the tpcds extension. With overwrite set, all existing
// tables are dropped first.
func Generate(dbPath string, sf int, overwrite bool) error {
	log.Infof("generating TPC-DS(SF=%d) into DuckDB at %s", sf, dbPath)
	db, err := database.New(dbPath)
	if err != nil {
		return errors.Wrap(err, "open duckdb")
	}
	defer db.Close()
	if _, err = db.Exec("INSTALL tpcds;"); err != nil {
		return errors.Wrap(err, "install tpcds extension")
	}
	if _, err = db.Exec("LOAD tpcds;"); err != nil {
		return errors.Wrap(err, "load tpcds extension")
	}
	if overwrite {
		if err = dropTables(db); err != nil {
			return err
		}
	}
	if _, err = db.Exec(DsdgenStmt(sf)); err != nil {
		return errors.Wrap(err, "dsdgen")
	}
	return nil
}

func dropTables(db *database.DB) error {
	log.Infof("overwriting existing tables")
	tables, err := db.Tables()
	if err != nil {
		return errors.Wrap(err, "list tables")
	}
	for _, t := range tables {
		if _, err = db.Exec(DropStmt(t)); err != nil {
			return errors.Wrapf(err, "drop table %s", t)
		}
	}
	log.Infof("all tables dropped")
	return nil
}

func DsdgenStmt(sf int) string {
	return fmt.Sprintf("CALL dsdgen(sf = %d);", sf)
}

func DropStmt(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE;", util.QuoteIdent(table))
}
