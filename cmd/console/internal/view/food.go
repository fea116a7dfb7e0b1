package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/food"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

type foodState int

const (
	foodStateForm foodState = iota
	foodStatePreview
	foodStateResult
)

// FoodModel drives the expiry registration flow.
type FoodModel struct {
	CommonModel
	svc *food.Service

	state foodState
	form  *huh.Form

	preview food.Preview
	confirm food.Confirm
}

func NewFoodModel(svc *food.Service) FoodModel {
	return FoodModel{
		svc:   svc,
		state: foodStateForm,
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("name").Title("Name"),
				huh.NewInput().Key("quantity").Title("Quantity"),
				huh.NewInput().Key("unit").Title("Unit"),
				huh.NewInput().Key("location").Title("Location").Placeholder("냉장고 / 냉동실 / 상온"),
				huh.NewInput().Key("category").Title("Category"),
				huh.NewInput().Key("supplier").Title("Supplier"),
			),
			huh.NewGroup(
				huh.NewInput().Key("memo").Title("Memo"),
				huh.NewInput().Key("purchaseDate").Title("Purchase Date").Placeholder("어제 / 오늘"),
				huh.NewInput().Key("healthTags").Title("Health Tags").Placeholder("탄수화물, 당류, 주류"),
				huh.NewInput().Key("expiryDays").Title("Expiry Days"),
				huh.NewInput().Key("expiryText").Title("Expiry Phrase").Placeholder("모레 / 주말까지 / 3일 후"),
				huh.NewInput().Key("price").Title("Price"),
			),
		).WithWidth(60).WithShowHelp(false),
	}
}

func (m FoodModel) Title() string { return "Food Expiry" }

func (m FoodModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m FoodModel) slots() food.Slots {
	return food.Slots{
		Name:         m.form.GetString("name"),
		Quantity:     slot.FromText(m.form.GetString("quantity")),
		Unit:         m.form.GetString("unit"),
		Location:     m.form.GetString("location"),
		Category:     m.form.GetString("category"),
		Supplier:     m.form.GetString("supplier"),
		Memo:         m.form.GetString("memo"),
		PurchaseDate: m.form.GetString("purchaseDate"),
		HealthTags:   m.form.GetString("healthTags"),
		ExpiryDays:   slot.FromText(m.form.GetString("expiryDays")),
		ExpiryText:   m.form.GetString("expiryText"),
		Price:        slot.FromText(m.form.GetString("price")),
	}
}

func (m FoodModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case foodStateForm:
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
		m.state = foodStatePreview

		return m, nil

	case foodStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.Confirm(m.slots())
				m.state = foodStateResult
			}
		}

		return m, nil

	case foodStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m FoodModel) View() string {
	switch m.state {
	case foodStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case foodStatePreview:
		return renderPreview(m.Title(), m.preview.Message)
	case foodStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
