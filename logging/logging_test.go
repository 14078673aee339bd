package logging_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TobiasRohner/codekit/logging"
)

var linePattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] -> (.*)\n$`)

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logging.Write(&buf, "starting up"))

	match := linePattern.FindStringSubmatch(buf.String())
	require.NotNilf(t, match, "line %q doesn't match the expected format", buf.String())
	assert.Equal(t, "starting up", match[1])
}

func TestTagActivation(t *testing.T) {
	const tag = 17
	t.Cleanup(func() { logging.Deactivate(tag) })

	assert.False(t, logging.Active(tag))
	logging.Activate(tag)
	assert.True(t, logging.Active(tag))
	logging.Deactivate(tag)
	assert.False(t, logging.Active(tag))
}

func TestWriteTagged(t *testing.T) {
	const enabled, disabled = 40, 41
	t.Cleanup(func() { logging.Deactivate(enabled) })
	logging.Activate(enabled)

	var buf bytes.Buffer

	written, err := logging.WriteTagged(&buf, "visible", enabled)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Regexp(t, linePattern, buf.String())

	buf.Reset()
	written, err = logging.WriteTagged(&buf, "hidden", disabled)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Zero(t, buf.Len())

	// One active tag out of several is enough.
	buf.Reset()
	written, err = logging.WriteTagged(&buf, "mixed", disabled, enabled)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Contains(t, buf.String(), "mixed")
}

func TestWriteTagged__NoTags(t *testing.T) {
	var buf bytes.Buffer
	written, err := logging.WriteTagged(&buf, "no tags at all")
	require.NoError(t, err)
	assert.False(t, written)
	assert.Zero(t, buf.Len())
}
