package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/MKhiriev/vikeypass/internal/clipboard"
	"github.com/MKhiriev/vikeypass/internal/mock"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/internal/store"
	"github.com/MKhiriev/vikeypass/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T, creds models.CredentialMap) (vaultModel, *mock.MockVaultService) {
	t.Helper()
	svc := mock.NewMockVaultService(gomock.NewController(t))
	return newVaultModel(context.Background(), svc, creds, models.NewAppBuildInfo("1.0.0", "", "")), svc
}

func press(t *testing.T, m vaultModel, keys ...string) (vaultModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, c := m.Update(msg)
		m = next.(vaultModel)
		cmd = c
	}
	return m, cmd
}

// typeLine enters command mode, types line and submits it.
func typeLine(t *testing.T, m vaultModel, line string) (vaultModel, tea.Cmd) {
	t.Helper()
	m, _ = press(t, m, ":")
	require.Equal(t, modeCommand, m.mode)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m = next.(vaultModel)
	return press(t, m, "enter")
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m vaultModel, cmd tea.Cmd) vaultModel {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(vaultModel)
}

func TestModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t, models.CredentialMap{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, []string{"a", "b", "c"}, m.names)

	m, _ = press(t, m, "j", "j", "j")
	name, _ := m.selected()
	assert.Equal(t, "c", name)

	m, _ = press(t, m, "k", "up")
	name, _ = m.selected()
	assert.Equal(t, "a", name)

	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, "down")
	name, _ = m.selected()
	assert.Equal(t, "b", name)
}

func TestModel_Copy(t *testing.T) {
	creds := models.CredentialMap{"github": "p@ss"}
	m, svc := newTestModel(t, creds)
	svc.EXPECT().Copy(gomock.Any(), creds, "github").Return(nil)

	m, cmd := press(t, m, "y")
	m = run(t, m, cmd)

	assert.Equal(t, "github: "+app.MsgCopied, m.status)
	assert.False(t, m.statusErr)
}

func TestModel_CopyFailureShowsStatus(t *testing.T) {
	m, svc := newTestModel(t, models.CredentialMap{"github": "p@ss"})
	svc.EXPECT().Copy(gomock.Any(), gomock.Any(), "github").Return(clipboard.ErrClipboardUnavailable)

	m, cmd := press(t, m, "c")
	m = run(t, m, cmd)

	assert.Equal(t, app.MsgClipboardUnavailable, m.status)
	assert.True(t, m.statusErr)
}

func TestModel_CopyOnEmptyVault(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())

	_, cmd := press(t, m, "y")
	assert.Nil(t, cmd)
}

func TestModel_DeleteConfirmed(t *testing.T) {
	m, svc := newTestModel(t, models.CredentialMap{"github": "p@ss", "mail": "m"})
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), "github").
		DoAndReturn(func(_ context.Context, creds models.CredentialMap, name string) error {
			creds.Delete(name)
			return nil
		})

	m, _ = press(t, m, "d")
	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, "github", m.pendingDelete)

	m, cmd := press(t, m, "y")
	assert.True(t, m.busy)
	m = run(t, m, cmd)

	assert.False(t, m.busy)
	assert.Equal(t, []string{"mail"}, m.names)
	assert.Equal(t, "github: "+app.MsgDeleted, m.status)
}

func TestModel_DeleteCancelled(t *testing.T) {
	m, _ := newTestModel(t, models.CredentialMap{"github": "p@ss"})

	m, _ = press(t, m, "d", "n")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.pendingDelete)
	assert.Equal(t, []string{"github"}, m.names)
}

func TestModel_DeleteSaveFailureKeepsEntry(t *testing.T) {
	creds := models.CredentialMap{"github": "p@ss"}
	m, svc := newTestModel(t, creds)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), "github").Return(store.ErrWriteFailed)

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "y")
	m = run(t, m, cmd)

	assert.Equal(t, []string{"github"}, m.names)
	assert.Equal(t, app.MsgSaveFailed, m.status)
	assert.True(t, m.statusErr)
}

func TestModel_CommandAdd(t *testing.T) {
	original := models.CredentialMap{"mail": "m"}
	m, svc := newTestModel(t, original)
	svc.EXPECT().Add(gomock.Any(), gomock.Any(), "github", "p@ss").
		DoAndReturn(func(_ context.Context, creds models.CredentialMap, name, secret string) error {
			creds.Add(name, secret)
			return nil
		})

	m, cmd := typeLine(t, m, "add github p@ss")
	assert.Equal(t, modeBrowse, m.mode)
	m = run(t, m, cmd)

	assert.Equal(t, []string{"github", "mail"}, m.names)
	assert.Equal(t, "p@ss", m.creds["github"])
	// the map handed in is untouched; the model swapped in the saved clone
	assert.Equal(t, models.CredentialMap{"mail": "m"}, original)
}

func TestModel_CommandEditUnknown(t *testing.T) {
	m, svc := newTestModel(t, models.CredentialMap{"mail": "m"})
	svc.EXPECT().Edit(gomock.Any(), gomock.Any(), "github", "x").Return(service.ErrAccountNotFound)

	m, cmd := typeLine(t, m, "edit github x")
	m = run(t, m, cmd)

	assert.Equal(t, app.MsgAccountNotFound, m.status)
	assert.Equal(t, []string{"mail"}, m.names)
}

func TestModel_CommandParseError(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())

	m, _ = typeLine(t, m, "add github")
	assert.Equal(t, app.MsgInvalidCommand, m.status)
	assert.True(t, m.statusErr)
	assert.False(t, m.busy)
}

func TestModel_CommandEscCancels(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())

	m, _ = press(t, m, "i")
	require.Equal(t, modeCommand, m.mode)

	m, cmd := press(t, m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, cmd)
}

func TestModel_CommandModeSwallowsHotkeys(t *testing.T) {
	m, _ := newTestModel(t, models.CredentialMap{"github": "p@ss"})

	m, _ = press(t, m, ":", "q", "d")
	assert.Equal(t, modeCommand, m.mode)
	assert.Equal(t, "qd", m.input.Value())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())

	m, _ = press(t, m, "v")
	assert.Equal(t, modeBuildInfo, m.mode)
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = press(t, m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestModel_ClearStatus(t *testing.T) {
	m, _ := newTestModel(t, models.NewCredentialMap())
	m.setStatus("x")

	next, _ := m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, next.(vaultModel).status)
}

func TestModel_StaleClearKeepsNewerStatus(t *testing.T) {
	m, svc := newTestModel(t, models.CredentialMap{"github": "p@ss", "mail": "m"})
	svc.EXPECT().Copy(gomock.Any(), gomock.Any(), "github").Return(nil)
	svc.EXPECT().Copy(gomock.Any(), gomock.Any(), "mail").Return(nil)

	m, cmd := press(t, m, "y")
	next, _ := m.Update(cmd())
	m = next.(vaultModel)
	first := m.statusSeq

	m, cmd = press(t, m, "j", "y")
	next, _ = m.Update(cmd())
	m = next.(vaultModel)
	require.Equal(t, "mail: "+app.MsgCopied, m.status)

	// the tick armed for the first status fires first
	next, _ = m.Update(clearStatusMsg{seq: first})
	m = next.(vaultModel)
	assert.Equal(t, "mail: "+app.MsgCopied, m.status)

	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, next.(vaultModel).status)
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, models.CredentialMap{"github": "p@ss"})

	view := m.View()
	assert.Contains(t, view, "github")
	assert.NotContains(t, view, "p@ss")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "пр...", fitText("привет мир", 5))
}
