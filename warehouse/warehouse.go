package warehouse

import (
	"context"
	"net/http"
	"os"

	"cloud.google.com/go/bigquery"
	"github.com/benchkit/tpcds-pipeline/config"
	"github.com/benchkit/tpcds-pipeline/file"
	"github.com/benchkit/tpcds-pipeline/log"
	"github.com/benchkit/tpcds-pipeline/manifest"
	"github.com/benchkit/tpcds-pipeline/model"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps a BigQuery client targeting one project/dataset pair.
type Client struct {
	bq  *bigquery.Client
	cfg *config.Config
}

func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := make([]option.ClientOption, 0, 1)
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	bq, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "new bigquery client")
	}
	bq.Location = cfg.Location
	return &Client{bq: bq, cfg: cfg}, nil
}

// EnsureDataset creates the target dataset at the configured location.
// Creation failure is non-fatal: a truly missing dataset surfaces in the
// first load job instead.
func (c *Client) EnsureDataset(ctx context.Context) {
	log.Infof("ensuring BigQuery dataset %s in project %s at location %s",
		c.cfg.DatasetID, c.cfg.ProjectID, c.cfg.Location)
	md := &bigquery.DatasetMetadata{
		Name:     c.cfg.DatasetID,
		Location: c.cfg.Location,
	}
	err := c.bq.Dataset(c.cfg.DatasetID).Create(ctx, md)
	if err == nil {
		return
	}
	if IsConflict(err) {
		log.Debugf("dataset %s already exists", c.cfg.DatasetID)
		return
	}
	log.Warnf("create dataset %s: %v", c.cfg.DatasetID, err)
}

// LoadTables submits one synchronous load job per exported table, in order,
// marking progress in mf after each completed job. Tables at or before the
// manifest position are skipped, as are tables with no Parquet file.
func (c *Client) LoadTables(ctx context.Context, tables []model.Table, mf *manifest.Manifest) error {
	log.Infof("loading Parquet into BigQuery at %s.%s", c.cfg.ProjectID, c.cfg.DatasetID)
	last, lastName, err := mf.Last()
	if err != nil {
		return errors.Wrap(err, "read manifest")
	}
	if last >= 0 {
		log.Infof("resuming after table %s", lastName)
	}
	for i, t := range tables {
		if i <= last {
			log.Debugf("table %s already loaded, skipped", t.Name)
			continue
		}
		if !file.Exists(t.Parquet) {
			log.Warnf("no Parquet file for table %s, skipped", t.Name)
			continue
		}
		if err = c.loadTable(ctx, t); err != nil {
			return errors.Wrapf(err, "load table %s", t.Name)
		}
		if err = mf.Mark(i, t.Name); err != nil {
			return errors.Wrap(err, "mark manifest")
		}
	}
	return nil
}

func (c *Client) loadTable(ctx context.Context, t model.Table) error {
	log.Infof("loading table %s from %s", t.TableID(c.cfg.ProjectID, c.cfg.DatasetID), t.Parquet)
	f, err := file.New(t.Parquet, os.O_RDONLY)
	if err != nil {
		return err
	}
	defer f.Close()
	src := bigquery.NewReaderSource(f)
	src.SourceFormat = bigquery.Parquet
	src.AutoDetect = true
	loader := c.bq.Dataset(c.cfg.DatasetID).Table(t.Name).LoaderFrom(src)
	loader.WriteDisposition = bigquery.TableWriteDisposition(c.cfg.WriteDisposition)
	job, err := loader.Run(ctx)
	if err != nil {
		return err
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return err
	}
	return status.Err()
}

func (c *Client) Close() error {
	return c.bq.Close()
}

// IsConflict reports whether err is an HTTP 409 from the BigQuery API.
func IsConflict(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusConflict
	}
	return false
}
