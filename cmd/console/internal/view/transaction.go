package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type transactionState int

const (
	transactionStateForm transactionState = iota
	transactionStatePreview
	transactionStateResult
)

// TransactionModel drives the full transaction flow: type slot values, see
// the preview question, confirm, inspect the deep link.
type TransactionModel struct {
	CommonModel
	svc *transaction.Service

	state transactionState
	form  *huh.Form

	preview transaction.Preview
	confirm transaction.Confirm
}

func NewTransactionModel(svc *transaction.Service) TransactionModel {
	return TransactionModel{
		svc:   svc,
		state: transactionStateForm,
		form:  buildTransactionForm(),
	}
}

func buildTransactionForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("type").Title("Type").Placeholder("지출 / 수입 / 저축 / 반품"),
			huh.NewInput().Key("amount").Title("Amount"),
			huh.NewInput().Key("quantity").Title("Quantity"),
			huh.NewInput().Key("unit").Title("Unit"),
			huh.NewInput().Key("unitPrice").Title("Unit Price"),
		),
		huh.NewGroup(
			huh.NewInput().Key("description").Title("Description"),
			huh.NewInput().Key("category").Title("Category"),
			huh.NewInput().Key("memo").Title("Memo"),
			huh.NewInput().Key("paymentMethod").Title("Payment Method"),
			huh.NewInput().Key("store").Title("Store"),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m TransactionModel) Title() string { return "Transaction" }

func (m TransactionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransactionModel) slots() transaction.Slots {
	return transaction.Slots{
		Type:          m.form.GetString("type"),
		Amount:        slot.FromText(m.form.GetString("amount")),
		Quantity:      slot.FromText(m.form.GetString("quantity")),
		Unit:          m.form.GetString("unit"),
		UnitPrice:     slot.FromText(m.form.GetString("unitPrice")),
		Description:   m.form.GetString("description"),
		Category:      m.form.GetString("category"),
		Memo:          m.form.GetString("memo"),
		PaymentMethod: m.form.GetString("paymentMethod"),
		Store:         m.form.GetString("store"),
	}
}

func (m TransactionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case transactionStateForm:
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

		m.preview = m.svc.Preview(m.slots())
		m.state = transactionStatePreview

		return m, nil

	case transactionStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.Confirm(m.slots())
				m.state = transactionStateResult
			}
		}

		return m, nil

	case transactionStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m TransactionModel) View() string {
	switch m.state {
	case transactionStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case transactionStatePreview:
		return renderPreview(m.Title(), m.preview.Message)
	case transactionStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
