package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/benchkit/tpcds-pipeline/config"
	"github.com/benchkit/tpcds-pipeline/consts"
	"github.com/benchkit/tpcds-pipeline/export"
	"github.com/benchkit/tpcds-pipeline/generator"
	"github.com/benchkit/tpcds-pipeline/log"
	"github.com/benchkit/tpcds-pipeline/manifest"
	"github.com/benchkit/tpcds-pipeline/pprof"
	"github.com/benchkit/tpcds-pipeline/warehouse"
	"github.com/joho/godotenv"
)

//  generates TPC-DS into DuckDB, exports per-table Parquet and loads it
//  into a BigQuery dataset
//
//  usage example:
//      ./tpcds-pipeline --sf 10 --project-id my-project --dataset-id tpsds_sf10 --location US

func main() {
	start := time.Now().UnixNano()
	code := _main()
	log.Infof("time-consuming %dms", (time.Now().UnixNano()-start)/1e6)
	os.Exit(code)
}

func _main() int {
	_ = godotenv.Load()
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return 2
	}
	log.SetDebug(cfg.Debug)
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if cfg.Pprof {
		go func() {
			log.Error(pprof.StartPprofServer(consts.PprofAddr))
		}()
	}
	if err = run(cfg); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	err := generator.Generate(cfg.DuckDBPath, cfg.ScaleFactor, cfg.Overwrite)
	if err != nil {
		return err
	}
	tables, err := export.Export(cfg.DuckDBPath, cfg.ParquetDir, cfg.Compression, cfg.Overwrite)
	if err != nil {
		return err
	}

	ctx := context.Background()
	wh, err := warehouse.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer wh.Close()
	wh.EnsureDataset(ctx)

	mf, err := manifest.New(filepath.Join(cfg.ParquetDir, consts.ManifestName))
	if err != nil {
		return err
	}
	if cfg.Overwrite {
		if err = mf.Reset(); err != nil {
			return err
		}
	}
	if err = wh.LoadTables(ctx, tables, mf); err != nil {
		return err
	}
	return mf.Delete()
}
