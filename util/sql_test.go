package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "/tmp/out.parquet", QuoteLiteral("/tmp/out.parquet"))
	assert.Equal(t, "it''s", QuoteLiteral("it's"))
	assert.Equal(t, "a''''b", QuoteLiteral("a''b"))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"store_sales"`, QuoteIdent("store_sales"))
	assert.Equal(t, `"we""ird"`, QuoteIdent(`we"ird`))
}
