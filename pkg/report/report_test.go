package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	passed := Result{Case: "test_delay"}
	failed := Result{Case: "test_rollover", Err: errors.New("exit status 1")}

	assert.Equal(t, "PASS", passed.Status())
	assert.Equal(t, "FAIL", failed.Status())
}
