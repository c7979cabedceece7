package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_FormatsCategoryAndSeverity(t *testing.T) {
	err := New(CategoryGit, SeverityFatal, "clone failed")
	assert.Equal(t, "git (fatal): clone failed", err.Error())
}

func TestWrap_PreservesCauseChain(t *testing.T) {
	cause := fs.ErrPermission
	err := EnumerationError("/repo/_versions", cause)

	require.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "guide enumeration failed")
	assert.Equal(t, "/repo/_versions", err.Context["path"])
}

func TestWithContext_AccumulatesFields(t *testing.T) {
	err := New(CategoryMetadata, SeverityWarning, "oops").
		WithContext("version", "2.7").
		WithContext("file", "quarkus.yaml")

	assert.Equal(t, "2.7", err.Context["version"])
	assert.Equal(t, "quarkus.yaml", err.Context["file"])
}

func TestErrorsAs_RecoversTypedError(t *testing.T) {
	var target *IngestError
	err := error(IndexWriteError("https://quarkus.io/guides/x", errors.New("disk full")))
	require.ErrorAs(t, err, &target)
	assert.Equal(t, CategoryIndex, target.Category)
	assert.Equal(t, SeverityError, target.Severity)
}
