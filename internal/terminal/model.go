package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	catalogdomain "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	checkoutapp "github.com/dmehra2102/Retail-POS-System/internal/checkout/application"
	checkoutdomain "github.com/dmehra2102/Retail-POS-System/internal/checkout/domain"
)

type screen int

const (
	screenMenu screen = iota
	screenCart
	screenPromptProduct
	screenPromptQuantity
	screenPromptPayment
	screenReceipt
)

type action int

const (
	actionAdd action = iota
	actionRemove
)

// Model is the console boundary. It only parses input and renders text;
// every domain decision lives in the coordinator. Parse failures re-prompt
// and never mutate state.
type Model struct {
	storeName string
	coord     *checkoutapp.Coordinator
	catalog   *catalogapp.Service

	screen    screen
	action    action
	input     string
	pendingID catalogdomain.ProductID
	status    string
	receipt   *checkoutdomain.Receipt
}

func NewModel(storeName string, coord *checkoutapp.Coordinator, catalog *catalogapp.Service) Model {
	return Model{storeName: storeName, coord: coord, catalog: catalog}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu, screenCart:
		return m.updateMenu(key)
	case screenReceipt:
		m.screen = screenMenu
		m.receipt = nil
		return m, nil
	default:
		return m.updatePrompt(key)
	}
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch key.String() {
	case "1":
		m.screen = screenMenu
	case "2":
		m.screen = screenPromptProduct
		m.action = actionAdd
		m.input = ""
	case "3":
		m.screen = screenPromptProduct
		m.action = actionRemove
		m.input = ""
	case "4":
		m.screen = screenCart
	case "5":
		lines, _, err := m.coord.Summary()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if len(lines) == 0 {
			m.status = "Cart is empty."
			return m, nil
		}
		m.screen = screenPromptPayment
		m.input = ""
	case "0", "q":
		return m, tea.Quit
	default:
		m.status = "Invalid option. Choose 1-5 or 0 to exit."
	}
	return m, nil
}

func (m Model) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenMenu
		m.input = ""
		m.status = ""
		return m, nil
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case "enter":
		return m.submit()
	default:
		s := key.String()
		if len(s) == 1 {
			m.input += s
		}
		return m, nil
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	in := strings.TrimSpace(m.input)
	m.input = ""

	switch m.screen {
	case screenPromptProduct:
		id := catalogdomain.ProductID(in)
		if _, err := m.catalog.Get(id); err != nil {
			m.status = "Product not found. Try again or esc to cancel."
			return m, nil
		}
		m.pendingID = id
		m.screen = screenPromptQuantity
		m.status = ""
		return m, nil

	case screenPromptQuantity:
		return m.submitQuantity(in)

	case screenPromptPayment:
		amount, err := decimal.NewFromString(in)
		if err != nil {
			m.status = "Invalid amount. Enter a number like 1500.00."
			return m, nil
		}
		receipt, err := m.coord.Checkout(amount)
		if err != nil {
			if errors.Is(err, checkoutapp.ErrInsufficientPayment) {
				m.status = err.Error() + " Try again or esc to cancel."
				return m, nil
			}
			m.status = err.Error()
			m.screen = screenMenu
			return m, nil
		}
		m.receipt = &receipt
		m.screen = screenReceipt
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m Model) submitQuantity(in string) (tea.Model, tea.Cmd) {
	if m.action == actionRemove && (in == "" || in == "all") {
		removed, err := m.coord.RemoveAllItem(m.pendingID)
		if err != nil {
			m.status = err.Error()
			m.screen = screenMenu
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %d x %s.", removed, m.pendingID)
		m.screen = screenMenu
		return m, nil
	}

	qty, err := strconv.Atoi(in)
	if err != nil {
		m.status = "Invalid quantity. Enter a whole number."
		return m, nil
	}

	if m.action == actionAdd {
		if err := m.coord.AddItem(m.pendingID, qty); err != nil {
			m.status = err.Error()
			if errors.Is(err, catalogapp.ErrNotFound) {
				m.screen = screenMenu
			}
			return m, nil
		}
		m.status = fmt.Sprintf("Added %d x %s.", qty, m.pendingID)
		m.screen = screenMenu
		return m, nil
	}

	removed, err := m.coord.RemoveItem(m.pendingID, qty)
	if err != nil {
		m.status = err.Error()
		if errors.Is(err, catalogapp.ErrNotFound) {
			m.screen = screenMenu
		}
		return m, nil
	}
	m.status = fmt.Sprintf("Removed %d x %s.", removed, m.pendingID)
	m.screen = screenMenu
	return m, nil
}

func (m Model) View() string {
	b := &strings.Builder{}

	switch m.screen {
	case screenMenu:
		fmt.Fprint(b, renderCatalog(m.storeName, m.catalog.List(), m.catalog.IsLow))
		fmt.Fprintln(b)
		fmt.Fprintln(b, "1. View Catalog")
		fmt.Fprintln(b, "2. Add Item to Cart")
		fmt.Fprintln(b, "3. Remove Item from Cart")
		fmt.Fprintln(b, "4. View Cart")
		fmt.Fprintln(b, "5. Checkout")
		fmt.Fprintln(b, "0. Exit")

	case screenCart:
		lines, totals, err := m.coord.Summary()
		if err != nil {
			fmt.Fprintln(b, err.Error())
		} else {
			fmt.Fprint(b, renderCart(m.storeName, lines, totals))
		}
		fmt.Fprintln(b, "\nPress any menu option to continue.")

	case screenPromptProduct:
		verb := "add"
		if m.action == actionRemove {
			verb = "remove"
		}
		fmt.Fprint(b, renderCatalog(m.storeName, m.catalog.List(), m.catalog.IsLow))
		fmt.Fprintf(b, "\nEnter product id to %s: %s_\n", verb, m.input)
		fmt.Fprintln(b, "(esc to cancel)")

	case screenPromptQuantity:
		if m.action == actionRemove {
			fmt.Fprintf(b, "Enter quantity to remove from %s (empty or \"all\" for all): %s_\n", m.pendingID, m.input)
		} else {
			fmt.Fprintf(b, "Enter quantity for %s: %s_\n", m.pendingID, m.input)
		}
		fmt.Fprintln(b, "(esc to cancel)")

	case screenPromptPayment:
		lines, totals, err := m.coord.Summary()
		if err == nil {
			fmt.Fprint(b, renderCart(m.storeName, lines, totals))
		}
		fmt.Fprintf(b, "\nTotal due: %s\n", totals.Total.StringFixed(2))
		fmt.Fprintf(b, "Enter payment amount: %s_\n", m.input)
		fmt.Fprintln(b, "(esc to cancel)")

	case screenReceipt:
		if m.receipt != nil {
			fmt.Fprint(b, RenderReceipt(m.storeName, *m.receipt))
		}
		fmt.Fprintln(b, "\nPress any key to continue.")
	}

	if m.status != "" {
		fmt.Fprintf(b, "\n%s\n", m.status)
	}
	return b.String()
}
