package display

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"addnoise/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelUpdate(t *testing.T) {
	plainColors(t)
	logger, buf := logging.NewTestLogger()

	m := NewModel("Image", solid(4, 4, color.White), 0, 0, logger)
	assert.NotEmpty(t, m.Canvas())

	t.Run("window resize redraws", func(t *testing.T) {
		updated, cmd := m.Update(tea.WindowSizeMsg{Width: 4, Height: 8})
		assert.Nil(t, cmd)
		resized := updated.(Model)
		// 2 usable columns, 2 usable rows
		assert.Equal(t, strings.Repeat(halfBlock, 2), strings.Split(resized.Canvas(), "\n")[0])
	})

	t.Run("tiny terminal", func(t *testing.T) {
		updated, _ := m.Update(tea.WindowSizeMsg{Width: 2, Height: 3})
		view := updated.(Model).View()
		assert.Contains(t, view, "terminal too small")
	})

	t.Run("any key dismisses", func(t *testing.T) {
		x := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
		require.False(t, key.Matches(x, DefaultKeyMap().Dismiss))

		updated, cmd := m.Update(x)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, updated.(Model).Dismissed)
		assert.Empty(t, updated.(Model).View())
		assert.Contains(t, buf.String(), "User action")
	})
}

func TestModelView(t *testing.T) {
	plainColors(t)

	m := NewModel("page-01.png", solid(4, 2, color.Black), 0, 0, nil)
	view := m.View()
	assert.Contains(t, view, "page-01.png")
	assert.Contains(t, view, halfBlock)
	assert.Contains(t, view, "any key")
	assert.Contains(t, view, "close")
}

func TestModelMaxSize(t *testing.T) {
	plainColors(t)

	m := NewModel("Image", solid(100, 100, color.White), 10, 3, nil)
	lines := strings.Split(m.Canvas(), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, 6, len([]rune(lines[0])))
}

func TestModelProgram(t *testing.T) {
	plainColors(t)

	m := NewModel("Distorted", solid(8, 8, color.White), 0, 0, nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(40, 20))

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return bytes.Contains(b, []byte("Distorted"))
		},
		teatest.WithCheckInterval(time.Millisecond*50),
		teatest.WithDuration(time.Second*3),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*3))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	assert.True(t, final.Dismissed)
}
