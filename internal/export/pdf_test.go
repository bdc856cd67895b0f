package export

import (
	"bytes"
	"testing"

	"VisualShell/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	shapes := []state.Shape{
		{X: 10, Y: 10, W: 100, H: 50, Name: "editor", Command: "vim"},
		{X: 150, Y: 100, W: 60, H: 60, Name: "café"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, shapes, 320, 240))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WritePDF(&buf, nil, 320, 240), ErrNothingToSave)
	assert.Error(t, WritePDF(&buf, []state.Shape{{W: 1, H: 1}}, 0, 240))
	assert.Zero(t, buf.Len())
}
