package confirmations_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xrelkd/axdot/pkg/errors"
	"github.com/xrelkd/axdot/pkg/ui/confirmations"
)

func TestAskUser_Answers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"upper yes with spaces", "  YES  \n", true},
		{"no", "no\n", false},
		{"n", "n\n", false},
		{"mixed case no", "No\n", false},
		{"no trailing newline", "y", true},
		{"first recognised wins", "y\nn\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			c := confirmations.NewConsole(strings.NewReader(tt.input), &out, &errOut)

			got, err := c.AskUser("really?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "really?\n", out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestAskUser_RepromptsOnInvalidInput(t *testing.T) {
	var out, errOut bytes.Buffer
	c := confirmations.NewConsole(strings.NewReader("maybe\n\nyep\nn\n"), &out, &errOut)

	got, err := c.AskUser("delete?")
	require.NoError(t, err)
	assert.False(t, got)

	assert.Equal(t, strings.Repeat("delete?\n", 4), out.String())
	assert.Equal(t, strings.Repeat(confirmations.MsgInvalidChoice+"\n", 3), errOut.String())
}

func TestAskUser_EndOfInputFails(t *testing.T) {
	for _, input := range []string{"", "maybe\n"} {
		var out, errOut bytes.Buffer
		c := confirmations.NewConsole(strings.NewReader(input), &out, &errOut)

		got, err := c.AskUser("delete?")
		assert.False(t, got)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStandardInput))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("boom") }

func TestAskUser_ReadErrorFails(t *testing.T) {
	var out, errOut bytes.Buffer
	c := confirmations.NewConsole(failingReader{}, &out, &errOut)

	_, err := c.AskUser("delete?")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStandardInput))
	assert.ErrorContains(t, err, "boom")
}
