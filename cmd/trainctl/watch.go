package main

import (
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"strings"
	"time"
)

type listMsg []app.Experiment

type listErrMsg struct {
	err error
}

type tickMsg struct {
}

type watchModel struct {
	client   client
	interval time.Duration
	list     []app.Experiment
	err      error
}

func runWatch(c client, cmd watchCmd) error {
	m := watchModel{
		client:   c,
		interval: time.Duration(cmd.Interval) * time.Second,
	}
	return tea.NewProgram(m).Start()
}

func (m watchModel) Init() tea.Cmd {
	return m.fetch
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case listMsg:
		m.list = msg
		m.err = nil
		return m, m.tick()
	case listErrMsg:
		m.err = msg.err
		return m, m.tick()
	case tickMsg:
		return m, m.fetch
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString("Experiments (q to quit)\n\n")
	fmt.Fprintf(&b, "%4s  %-24s  %-7s  %-16s  %-16s  %s\n", "ID", "NAME", "KIND", "ENV", "UPDATED", "STATUS")
	for _, e := range m.list {
		fmt.Fprintf(
			&b, "%4d  %-24s  %-7s  %-16s  %-16s  %s\n",
			e.ID, trimCell(e.Name, 24), e.Kind, trimCell(e.Env, 16), humanize.Time(e.UpdatedAt), colorStatus(e.Status),
		)
	}
	if m.err != nil {
		fmt.Fprintf(&b, "\nThe last update failed: %v\n", m.err)
	}
	return b.String()
}

func (m watchModel) fetch() tea.Msg {
	list, err := m.client.listExperiments(app.FilterExperiments{})
	if err != nil {
		return listErrMsg{err: err}
	}
	return listMsg(list)
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func trimCell(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
