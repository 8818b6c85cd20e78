package consts

const (
	DefaultScaleFactor      = 10
	DefaultDuckDBPath       = "/tmp/tpcds_sf10.duckdb"
	DefaultParquetDir       = "/tmp/tpcds_sf10_parquet"
	DefaultCompression      = "ZSTD"
	DefaultDatasetID        = "tpsds_sf10"
	DefaultLocation         = "US"
	DefaultWriteDisposition = "WRITE_TRUNCATE"

	ParquetSuffix = ".parquet"
	ManifestName  = ".loaded"

	PprofAddr = "0.0.0.0:8000"
)

const (
	EnvScaleFactor      = "TPCDS_SF"
	EnvDuckDBPath       = "DUCKDB_PATH"
	EnvParquetDir       = "PARQUET_DIR"
	EnvCompression      = "PARQUET_COMPRESSION"
	EnvProjectID        = "GCP_PROJECT_ID"
	EnvDatasetID        = "BQ_DATASET_ID"
	EnvLocation         = "BQ_LOCATION"
	EnvWriteDisposition = "BQ_WRITE_DISPOSITION"
	EnvCredentials      = "GOOGLE_APPLICATION_CREDENTIALS"
)
