package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
	"github.com/MrJamesThe3rd/ledgervoice/internal/navigate"
)

type navigateState int

const (
	navigateStateList navigateState = iota
	navigateStateResult
)

// featureItem wraps a feature id to implement list.Item.
type featureItem struct {
	id string
}

func (i featureItem) Title() string {
	return fmt.Sprintf("%s  %s", deeplink.Lookup(i.id).Label, faintStyle.Render(i.id))
}

func (i featureItem) Description() string { return deeplink.Lookup(i.id).Route }

func (i featureItem) FilterValue() string { return i.id + " " + deeplink.Lookup(i.id).Label }

type featureDelegate struct{}

func (d featureDelegate) Height() int                             { return 1 }
func (d featureDelegate) Spacing() int                            { return 0 }
func (d featureDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d featureDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(featureItem)
	if !ok {
		return
	}

	line := it.Title()
	if index == m.Index() {
		line = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("> " + line)
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}

// NavigateModel lets the developer pick a screen and inspect the nav link.
type NavigateModel struct {
	CommonModel
	svc *navigate.Service

	state  navigateState
	list   list.Model
	result navigate.Result
}

func NewNavigateModel(svc *navigate.Service) NavigateModel {
	ids := deeplink.IDs()

	items := make([]list.Item, len(ids))
	for i, id := range ids {
		items[i] = featureItem{id: id}
	}

	l := list.New(items, featureDelegate{}, 80, 20)
	l.Title = "Screens"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return NavigateModel{svc: svc, state: navigateStateList, list: l}
}

func (m NavigateModel) Title() string { return "Navigate" }

func (m NavigateModel) Init() tea.Cmd {
	return nil
}

func (m NavigateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case navigateStateList:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				if m.list.FilterState() == list.Filtering {
					break
				}

				return m, Back
			case tea.KeyEnter:
				if item, ok := m.list.SelectedItem().(featureItem); ok {
					m.result = m.svc.OpenFeature(item.id)
					m.state = navigateStateResult

					return m, nil
				}
			}
		}

		if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
			m.list.SetSize(sizeMsg.Width-4, sizeMsg.Height-4)
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		return m, cmd

	case navigateStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = navigateStateList
			return m, nil
		}

		return m, nil
	}

	return m, nil
}

func (m NavigateModel) View() string {
	switch m.state {
	case navigateStateList:
		return padStyle.Render(m.list.View())
	case navigateStateResult:
		return renderResult(m.Title(), m.result.Message, m.result.DeepLink)
	}

	return ""
}
