package warehouse

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(&googleapi.Error{Code: 409}))
	assert.True(t, IsConflict(errors.Wrap(&googleapi.Error{Code: 409}, "create dataset")))
	assert.False(t, IsConflict(&googleapi.Error{Code: 404}))
	assert.False(t, IsConflict(errors.New("boom")))
	assert.False(t, IsConflict(nil))
}
