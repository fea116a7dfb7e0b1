package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/stock"
)

type stockState int

const (
	stockStateForm stockState = iota
	stockStatePreview
	stockStateResult
)

// StockModel drives the stock decrement flow. A check result for the
// canonical product is shown alongside the preview question.
type StockModel struct {
	CommonModel
	svc *stock.Service

	state stockState
	form  *huh.Form

	check   stock.CheckResult
	preview stock.Preview
	confirm stock.Confirm
}

func NewStockModel(svc *stock.Service) StockModel {
	return StockModel{
		svc:   svc,
		state: stockStateForm,
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("product").Title("Product").Placeholder("계란 / 파 / 두부"),
				huh.NewInput().Key("amount").Title("Amount").Description("Leave empty to use the whole stock"),
				huh.NewInput().Key("unit").Title("Unit"),
			),
		).WithWidth(60).WithShowHelp(false),
	}
}

func (m StockModel) Title() string { return "Stock Use" }

func (m StockModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m StockModel) slots() stock.Slots {
	return stock.Slots{
		ProductName: m.form.GetString("product"),
		Amount:      slot.FromText(m.form.GetString("amount")),
		Unit:        m.form.GetString("unit"),
	}
}

func (m StockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stockStateForm:
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

		m.check = m.svc.Check(m.form.GetString("product"))
		m.preview = m.svc.PreviewUse(m.slots())
		m.state = stockStatePreview

		return m, nil

	case stockStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.ConfirmUse(m.slots())
				m.state = stockStateResult
			}
		}

		return m, nil

	case stockStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m StockModel) View() string {
	switch m.state {
	case stockStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case stockStatePreview:
		detail := m.preview.Message + "\n\n" +
			faintStyle.Render(m.check.ProductName+" (기본 단위: "+m.check.Unit+")")

		return renderPreview(m.Title(), detail)
	case stockStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
