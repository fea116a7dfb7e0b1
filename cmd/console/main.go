package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledgervoice/cmd/console/internal/view"
	"github.com/MrJamesThe3rd/ledgervoice/internal/asset"
	"github.com/MrJamesThe3rd/ledgervoice/internal/config"
	"github.com/MrJamesThe3rd/ledgervoice/internal/food"
	"github.com/MrJamesThe3rd/ledgervoice/internal/navigate"
	"github.com/MrJamesThe3rd/ledgervoice/internal/stock"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type model struct {
	txService       *transaction.Service
	assetService    *asset.Service
	foodService     *food.Service
	stockService    *stock.Service
	navigateService *navigate.Service

	currentView View

	transactionView view.TransactionModel
	quickView       view.QuickModel
	pointsView      view.PointsModel
	assetView       view.AssetModel
	foodView        view.FoodModel
	stockView       view.StockModel
	navigateView    view.NavigateModel
}

type View int

const (
	ViewMenu View = iota
	ViewTransaction
	ViewQuick
	ViewPoints
	ViewAsset
	ViewFood
	ViewStock
	ViewNavigate
)

func initialModel() model {
	_ = godotenv.Load()

	if _, err := config.Load(); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService()
	assetSvc := asset.NewService()
	foodSvc := food.NewService()
	stockSvc := stock.NewService()
	navSvc := navigate.NewService()

	return model{
		txService:       txSvc,
		assetService:    assetSvc,
		foodService:     foodSvc,
		stockService:    stockSvc,
		navigateService: navSvc,
		currentView:     ViewMenu,
		transactionView: view.NewTransactionModel(txSvc),
		quickView:       view.NewQuickModel(txSvc),
		pointsView:      view.NewPointsModel(txSvc),
		assetView:       view.NewAssetModel(assetSvc),
		foodView:        view.NewFoodModel(foodSvc),
		stockView:       view.NewStockModel(stockSvc),
		navigateView:    view.NewNavigateModel(navSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTransaction
				m.transactionView = view.NewTransactionModel(m.txService)

				return m, m.transactionView.Init()
			case "2":
				m.currentView = ViewQuick
				m.quickView = view.NewQuickModel(m.txService)

				return m, m.quickView.Init()
			case "3":
				m.currentView = ViewPoints
				m.pointsView = view.NewPointsModel(m.txService)

				return m, m.pointsView.Init()
			case "4":
				m.currentView = ViewAsset
				m.assetView = view.NewAssetModel(m.assetService)

				return m, m.assetView.Init()
			case "5":
				m.currentView = ViewFood
				m.foodView = view.NewFoodModel(m.foodService)

				return m, m.foodView.Init()
			case "6":
				m.currentView = ViewStock
				m.stockView = view.NewStockModel(m.stockService)

				return m, m.stockView.Init()
			case "7":
				m.currentView = ViewNavigate
				m.navigateView = view.NewNavigateModel(m.navigateService)

				return m, m.navigateView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTransaction:
		var newModel tea.Model
		newModel, cmd = m.transactionView.Update(msg)
		m.transactionView = newModel.(view.TransactionModel)
	case ViewQuick:
		var newModel tea.Model
		newModel, cmd = m.quickView.Update(msg)
		m.quickView = newModel.(view.QuickModel)
	case ViewPoints:
		var newModel tea.Model
		newModel, cmd = m.pointsView.Update(msg)
		m.pointsView = newModel.(view.PointsModel)
	case ViewAsset:
		var newModel tea.Model
		newModel, cmd = m.assetView.Update(msg)
		m.assetView = newModel.(view.AssetModel)
	case ViewFood:
		var newModel tea.Model
		newModel, cmd = m.foodView.Update(msg)
		m.foodView = newModel.(view.FoodModel)
	case ViewStock:
		var newModel tea.Model
		newModel, cmd = m.stockView.Update(msg)
		m.stockView = newModel.(view.StockModel)
	case ViewNavigate:
		var newModel tea.Model
		newModel, cmd = m.navigateView.Update(msg)
		m.navigateView = newModel.(view.NavigateModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"LedgerVoice Console\n\n" +
				"1. Transaction\n" +
				"2. Quick Expense\n" +
				"3. Shopping Points\n" +
				"4. Asset\n" +
				"5. Food Expiry\n" +
				"6. Stock Use\n" +
				"7. Navigate\n\n" +
				"q. Quit",
		)
	case ViewTransaction:
		return m.transactionView.View()
	case ViewQuick:
		return m.quickView.View()
	case ViewPoints:
		return m.pointsView.View()
	case ViewAsset:
		return m.assetView.View()
	case ViewFood:
		return m.foodView.View()
	case ViewStock:
		return m.stockView.View()
	case ViewNavigate:
		return m.navigateView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run console", "error", err)
		os.Exit(1)
	}
}
