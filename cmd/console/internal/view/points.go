package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type pointsState int

const (
	pointsStateForm pointsState = iota
	pointsStatePreview
	pointsStateResult
)

// PointsModel drives the shopping-point savings flow.
type PointsModel struct {
	CommonModel
	svc *transaction.Service

	state pointsState
	form  *huh.Form

	preview transaction.Preview
	confirm transaction.Confirm
}

func NewPointsModel(svc *transaction.Service) PointsModel {
	return PointsModel{
		svc:   svc,
		state: pointsStateForm,
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("amount").Title("Amount"),
				huh.NewInput().Key("description").Title("Description").Placeholder("쇼핑 포인트"),
			),
		).WithWidth(60).WithShowHelp(false),
	}
}

func (m PointsModel) Title() string { return "Shopping Points" }

func (m PointsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m PointsModel) slots() transaction.PointsSlots {
	return transaction.PointsSlots{
		Amount:      slot.FromText(m.form.GetString("amount")),
		Description: m.form.GetString("description"),
	}
}

func (m PointsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case pointsStateForm:
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

		m.preview = m.svc.PreviewPoints(m.slots())
		m.state = pointsStatePreview

		return m, nil

	case pointsStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.ConfirmPoints(m.slots())
				m.state = pointsStateResult
			}
		}

		return m, nil

	case pointsStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m PointsModel) View() string {
	switch m.state {
	case pointsStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case pointsStatePreview:
		return renderPreview(m.Title(), m.preview.Message)
	case pointsStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
