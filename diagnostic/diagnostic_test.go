package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalKinds(t *testing.T) {
	assert.True(t, New(KindParseError, 0, -1, errors.New("x")).Fatal())
	assert.True(t, New(KindEmitError, 0, -1, errors.New("x")).Fatal())
	assert.False(t, New(KindRegionRejected, 0, 0, errors.New("x")).Fatal())
	assert.False(t, New(KindPlanFailure, 0, 0, errors.New("x")).Fatal())
	assert.False(t, New(KindGeometryDegenerate, 0, 0, errors.New("x")).Fatal())
	assert.False(t, New(KindTimeout, 0, 0, errors.New("x")).Fatal())
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(New(KindEmitError, 1, -1, errors.New("x"))))
	assert.False(t, IsFatal(New(KindTimeout, 1, 2, errors.New("x"))))
	assert.True(t, IsFatal(errors.New("unclassified")))
	assert.False(t, IsFatal(nil))
}

func TestUnwrap(t *testing.T) {
	base := errors.New("boom")
	d := New(KindTimeout, 1, 2, base)
	assert.ErrorIs(t, d, base)
}
