package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/benchkit/tpcds-pipeline/consts"
	"github.com/pkg/errors"
)

// ErrMissingProject is returned by Validate when no GCP project is configured.
var ErrMissingProject = errors.New("missing --project-id (or GCP_PROJECT_ID in env)")

type Config struct {
	ScaleFactor int
	DuckDBPath  string
	ParquetDir  string
	Compression string
	Overwrite   bool

	ProjectID        string
	DatasetID        string
	Location         string
	WriteDisposition string
	Credentials      string

	Debug bool
	Pprof bool
}

func envDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envDefaultInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// Parse resolves the pipeline configuration from args, with environment
// variables as defaults. Flag values win over environment values.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("tpcds-pipeline", flag.ContinueOnError)
	fs.IntVar(&cfg.ScaleFactor, "sf", envDefaultInt(consts.EnvScaleFactor, consts.DefaultScaleFactor), "TPC-DS scale factor")
	fs.StringVar(&cfg.DuckDBPath, "duckdb-path", envDefault(consts.EnvDuckDBPath, consts.DefaultDuckDBPath), "path of the DuckDB database file")
	fs.StringVar(&cfg.ParquetDir, "parquet-dir", envDefault(consts.EnvParquetDir, consts.DefaultParquetDir), "dir path of exported Parquet files")
	fs.StringVar(&cfg.Compression, "compression", envDefault(consts.EnvCompression, consts.DefaultCompression), "Parquet compression codec")
	fs.BoolVar(&cfg.Overwrite, "overwrite", true, "overwrite existing tables and Parquet outputs")
	fs.StringVar(&cfg.ProjectID, "project-id", envDefault(consts.EnvProjectID, ""), "GCP project id")
	fs.StringVar(&cfg.DatasetID, "dataset-id", envDefault(consts.EnvDatasetID, consts.DefaultDatasetID), "BigQuery dataset id")
	fs.StringVar(&cfg.Location, "location", envDefault(consts.EnvLocation, consts.DefaultLocation), "BigQuery dataset location")
	fs.StringVar(&cfg.WriteDisposition, "write-disposition", envDefault(consts.EnvWriteDisposition, consts.DefaultWriteDisposition), "BigQuery write disposition")
	fs.StringVar(&cfg.Credentials, "gcp-credentials", envDefault(consts.EnvCredentials, ""), "path to a service account JSON key, empty for ADC")
	fs.BoolVar(&cfg.Debug, "debug", false, "sets log level to debug")
	fs.BoolVar(&cfg.Pprof, "pprof", false, "serve pprof on "+consts.PprofAddr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Compression = strings.ToUpper(c.Compression)
}

func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return ErrMissingProject
	}
	return nil
}
