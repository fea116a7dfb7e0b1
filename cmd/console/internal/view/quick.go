package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type quickState int

const (
	quickStateForm quickState = iota
	quickStatePreview
	quickStateResult
)

// QuickModel drives the one-line simple expense flow.
type QuickModel struct {
	CommonModel
	svc *transaction.Service

	state quickState
	form  *huh.Form

	preview transaction.QuickPreview
	confirm transaction.Confirm
}

func NewQuickModel(svc *transaction.Service) QuickModel {
	return QuickModel{
		svc:   svc,
		state: quickStateForm,
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("amount").Title("Amount"),
				huh.NewInput().Key("description").Title("Description"),
				huh.NewInput().Key("payment").Title("Payment"),
				huh.NewInput().Key("store").Title("Store"),
			),
		).WithWidth(60).WithShowHelp(false),
	}
}

func (m QuickModel) Title() string { return "Quick Expense" }

func (m QuickModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m QuickModel) slots() transaction.QuickSlots {
	return transaction.QuickSlots{
		Amount:      slot.FromText(m.form.GetString("amount")),
		Description: m.form.GetString("description"),
		Payment:     m.form.GetString("payment"),
		Store:       m.form.GetString("store"),
	}
}

func (m QuickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case quickStateForm:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.preview = m.svc.PreviewQuick(m.slots())
		m.state = quickStatePreview

		return m, nil

	case quickStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.ConfirmQuick(m.slots())
				m.state = quickStateResult
			}
		}

		return m, nil

	case quickStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m QuickModel) View() string {
	switch m.state {
	case quickStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case quickStatePreview:
		return renderPreview(m.Title(), m.preview.Message)
	case quickStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
