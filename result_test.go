package mol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.OK())
	assert.Equal(t, 42, ok.Value())
	assert.Empty(t, ok.Err())
	v, err := ok.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	fail := Fail[int]("something went wrong")
	assert.False(t, fail.OK())
	assert.Equal(t, "something went wrong", fail.Err())
	_, err = fail.Unwrap()
	require.Error(t, err)
	assert.Equal(t, "something went wrong", err.Error())
	assert.Panics(t, func() { fail.Value() })
}

func TestErrorDecorate(t *testing.T) {
	err := makeError(UnknownElement, "Xx", "FromSymbol")
	deco := err.Decorate("caller")
	assert.Equal(t, []string{"FromSymbol", "caller"}, deco)
	assert.Equal(t, []string{"FromSymbol"}, err.Decorate(""))
	assert.True(t, IsErrorKind(err, UnknownElement))
	assert.False(t, IsErrorKind(nil, UnknownElement))
}
