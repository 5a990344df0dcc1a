package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueOptionsKeepDefaults(t *testing.T) {
	// A zero Table or Locale leaves the converter on its defaults rather
	// than installing an unusable configuration.
	c := New(WithTable(Table{}), WithLocale(Locale{}))

	got, err := c.Format(1536)
	require.NoError(t, err)
	assert.Equal(t, "1.50 KiB", got)

	n, err := c.Parse("1.50 KiB")
	require.NoError(t, err)
	assert.Equal(t, int64(1536), n)
}

func TestOptionsDoNotMutateEarlierConverters(t *testing.T) {
	base := New()
	si := New(WithStandard(SI), WithLocale(German))

	got, err := base.Format(1500)
	require.NoError(t, err)
	assert.Equal(t, "1.46 KiB", got, "default converter must be unaffected")

	got, err = si.Format(1500)
	require.NoError(t, err)
	assert.Equal(t, "1,50 KB", got)
}
