package chat

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/testutil"
)

func TestChatSend_ContinuesConversation(t *testing.T) {
	a := testutil.NewApp(t, nil)

	out, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", "first", "--json"})
	require.NoError(t, err)
	var data struct {
		Started bool `json:"started"`
	}
	require.NoError(t, json.Unmarshal(testutil.DecodeJSON(t, out).Data, &data))
	assert.True(t, data.Started)

	out, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", "second"})
	require.NoError(t, err)
	assert.Contains(t, out, "Added message to conversation")

	convs := a.Conversations()
	require.Len(t, convs, 1)
	assert.Len(t, convs[0].Messages, 2)
}

func TestChatSend_Empty(t *testing.T) {
	a := testutil.NewApp(t, nil)

	_, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", " "})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Empty(t, a.Conversations())
}

func TestChatNewAndList(t *testing.T) {
	a := testutil.NewApp(t, nil)
	_, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", "hello"})
	require.NoError(t, err)

	_, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"new"})
	require.NoError(t, err)

	out, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "New Chat")

	out, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"list", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestChatShow(t *testing.T) {
	a := testutil.NewApp(t, nil)
	for _, msg := range []string{"a", "b"} {
		_, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", msg})
		require.NoError(t, err)
	}

	out, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"show"})
	require.NoError(t, err)
	assert.Equal(t, "User: a\nUser: b\n", out)

	_, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"show", "missing"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestChatSave(t *testing.T) {
	a := testutil.NewApp(t, nil)

	out, err := testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"send", "Buy milk. Call Alice!", "--quiet"})
	require.NoError(t, err)
	msgID := strings.TrimSpace(out)

	out, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"save", msgID, "--board", "Board B"})
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 2 card(s) to Board B Inbox")
	assert.Len(t, a.Boards()[1].Columns[0].Tasks, 3)

	_, err = testutil.ExecuteCLICommand(t, a, ChatCmd(), []string{"save", "missing"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
