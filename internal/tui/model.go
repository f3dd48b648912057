package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/MKhiriev/vikeypass/internal/command"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeCommand
	modeConfirm
	modeBuildInfo
)

const statusTTL = 3 * time.Second

type vaultModel struct {
	ctx       context.Context
	svc       service.VaultService
	buildInfo models.AppBuildInfo

	creds models.CredentialMap
	names []string
	idx   int

	mode          mode
	input         textinput.Model
	pendingDelete string

	// busy is set while a save runs; further edits are refused until it
	// reports back.
	busy bool

	status    string
	statusErr bool
	// statusSeq numbers status updates; a clear tick only applies to the
	// status it was armed for.
	statusSeq uint64
}

func newVaultModel(ctx context.Context, svc service.VaultService, creds models.CredentialMap, buildInfo models.AppBuildInfo) vaultModel {
	in := textinput.New()
	in.Prompt = ": "
	in.Placeholder = command.Usage
	in.CharLimit = 512

	m := vaultModel{
		ctx:       ctx,
		svc:       svc,
		buildInfo: buildInfo,
		input:     in,
	}
	m.setCreds(creds)
	return m
}

func (m vaultModel) Init() tea.Cmd {
	return nil
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, m.cmdClearStatus()
		}
		m.setCreds(msg.creds)
		m.setStatus(msg.status)
		return m, m.cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, m.cmdClearStatus()
		}
		m.setStatus(msg.name + ": " + app.MsgCopied)
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeCommand:
		return m.updateCommand(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeBuildInfo:
		if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.esc) || key.Matches(k, keys.buildInfo)) {
			m.mode = modeBrowse
		}
		return m, nil
	default:
		return m.updateBrowse(msg)
	}
}

func (m vaultModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit
	case key.Matches(k, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(k, keys.down):
		if m.idx < len(m.names)-1 {
			m.idx++
		}
	case key.Matches(k, keys.copy):
		name, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(name)
	case key.Matches(k, keys.delete):
		name, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		m.pendingDelete = name
		m.mode = modeConfirm
	case key.Matches(k, keys.command):
		m.mode = modeCommand
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(k, keys.buildInfo):
		m.mode = modeBuildInfo
	}
	return m, nil
}

func (m vaultModel) updateCommand(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			m.mode = modeBrowse
			m.input.Blur()
			return m, nil
		case key.Matches(k, keys.enter):
			line := m.input.Value()
			m.mode = modeBrowse
			m.input.Blur()
			m.input.Reset()
			return m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m vaultModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.yes):
		name := m.pendingDelete
		m.pendingDelete = ""
		m.mode = modeBrowse
		m.busy = true
		return m, m.cmdDelete(name)
	case key.Matches(k, keys.no), key.Matches(k, keys.esc):
		m.pendingDelete = ""
		m.mode = modeBrowse
	}
	return m, nil
}

// execute runs a command line typed in command mode.
func (m vaultModel) execute(line string) (tea.Model, tea.Cmd) {
	parsed, err := command.Parse(line)
	if err != nil {
		m.setError(err)
		return m, m.cmdClearStatus()
	}
	if m.busy {
		return m, nil
	}

	m.busy = true
	switch parsed.Action {
	case command.ActionAdd:
		return m, m.cmdAdd(parsed.Name, parsed.Secret)
	case command.ActionEdit:
		return m, m.cmdEdit(parsed.Name, parsed.Secret)
	default:
		return m, m.cmdDelete(parsed.Name)
	}
}

// Save commands run against a clone; savedMsg swaps it in on success.

func (m vaultModel) cmdAdd(name, secret string) tea.Cmd {
	ctx, svc, next := m.ctx, m.svc, m.creds.Clone()
	return func() tea.Msg {
		err := svc.Add(ctx, next, name, secret)
		return savedMsg{creds: next, status: name + ": " + app.MsgAdded, err: err}
	}
}

func (m vaultModel) cmdEdit(name, secret string) tea.Cmd {
	ctx, svc, next := m.ctx, m.svc, m.creds.Clone()
	return func() tea.Msg {
		err := svc.Edit(ctx, next, name, secret)
		return savedMsg{creds: next, status: name + ": " + app.MsgEdited, err: err}
	}
}

func (m vaultModel) cmdDelete(name string) tea.Cmd {
	ctx, svc, next := m.ctx, m.svc, m.creds.Clone()
	return func() tea.Msg {
		err := svc.Delete(ctx, next, name)
		return savedMsg{creds: next, status: name + ": " + app.MsgDeleted, err: err}
	}
}

func (m vaultModel) cmdCopy(name string) tea.Cmd {
	ctx, svc, creds := m.ctx, m.svc, m.creds
	return func() tea.Msg {
		return copiedMsg{name: name, err: svc.Copy(ctx, creds, name)}
	}
}

func (m vaultModel) cmdClearStatus() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *vaultModel) setCreds(creds models.CredentialMap) {
	if creds == nil {
		creds = models.NewCredentialMap()
	}
	m.creds = creds
	m.names = creds.Names()
	if m.idx >= len(m.names) {
		m.idx = len(m.names) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m vaultModel) selected() (string, bool) {
	if len(m.names) == 0 || m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

func (m *vaultModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
	m.statusSeq++
}

func (m *vaultModel) setError(err error) {
	m.status = app.MessageFor(err)
	m.statusErr = true
	m.statusSeq++
}
