package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/ledgervoice/internal/asset"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

type assetState int

const (
	assetStateForm assetState = iota
	assetStatePreview
	assetStateResult
)

// AssetModel drives the simple asset entry flow.
type AssetModel struct {
	CommonModel
	svc *asset.Service

	state assetState
	form  *huh.Form

	preview asset.Preview
	confirm asset.Confirm
}

func NewAssetModel(svc *asset.Service) AssetModel {
	return AssetModel{
		svc:   svc,
		state: assetStateForm,
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("category").Title("Category").Placeholder("현금 / 예금 / 적금 / 주식"),
				huh.NewInput().Key("name").Title("Name"),
				huh.NewInput().Key("amount").Title("Amount"),
				huh.NewInput().Key("location").Title("Location"),
				huh.NewInput().Key("memo").Title("Memo"),
			),
		).WithWidth(60).WithShowHelp(false),
	}
}

func (m AssetModel) Title() string { return "Asset" }

func (m AssetModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AssetModel) slots() asset.Slots {
	return asset.Slots{
		Category: m.form.GetString("category"),
		Name:     m.form.GetString("name"),
		Amount:   slot.FromText(m.form.GetString("amount")),
		Location: m.form.GetString("location"),
		Memo:     m.form.GetString("memo"),
	}
}

func (m AssetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case assetStateForm:
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
		m.state = assetStatePreview

		return m, nil

	case assetStatePreview:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				m.confirm = m.svc.Confirm(m.slots())
				m.state = assetStateResult
			}
		}

		return m, nil

	case assetStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		return m, nil
	}

	return m, nil
}

func (m AssetModel) View() string {
	switch m.state {
	case assetStateForm:
		return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case assetStatePreview:
		return renderPreview(m.Title(), m.preview.Message)
	case assetStateResult:
		return renderResult(m.Title(), m.confirm.Message, m.confirm.DeepLink)
	}

	return ""
}
