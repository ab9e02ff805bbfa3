package client

import "go-cafe-ordering/models"

// CatalogView is the shopper-facing menu page. It shows available items only
// and derives its category tabs from whatever the server returns.
type CatalogView struct {
	api        *Client
	Items      []models.MenuItem
	Categories []string
}

func NewCatalogView(api *Client) *CatalogView {
	return &CatalogView{api: api}
}

// Load fetches the menu, drops unavailable items, and rebuilds the category
// list from them.
func (v *CatalogView) Load() error {
	menu, err := v.api.Menu()
	if err != nil {
		return err
	}
	v.Items = availableOnly(menu)
	v.Categories = uniqueCategories(v.Items)
	return nil
}

// Filter re-fetches the menu and narrows it to one category. "all" shows
// every available item, matching the implicit first tab.
func (v *CatalogView) Filter(category string) error {
	menu, err := v.api.Menu()
	if err != nil {
		return err
	}
	available := availableOnly(menu)
	if category == "all" {
		v.Items = available
		return nil
	}

	filtered := make([]models.MenuItem, 0)
	for _, item := range available {
		if item.Category != nil && *item.Category == category {
			filtered = append(filtered, item)
		}
	}
	v.Items = filtered
	return nil
}

// AdminView is the staff panel: the full menu, unavailable items included,
// with a toggle per item.
type AdminView struct {
	api   *Client
	Items []models.MenuItem
}

func NewAdminView(api *Client) *AdminView {
	return &AdminView{api: api}
}

func (v *AdminView) Load() error {
	menu, err := v.api.Menu()
	if err != nil {
		return err
	}
	v.Items = menu
	return nil
}

// Toggle flips an item's availability on the server and replaces the local
// row with the document the server returns, so the panel never shows a value
// the store did not confirm.
func (v *AdminView) Toggle(itemID int64) error {
	var current *models.MenuItem
	for i := range v.Items {
		if v.Items[i].Item_id != nil && *v.Items[i].Item_id == itemID {
			current = &v.Items[i]
			break
		}
	}
	if current == nil {
		return nil
	}

	updated, err := v.api.SetAvailability(itemID, !current.IsAvailable())
	if err != nil {
		return err
	}
	*current = updated
	return nil
}

// CartTotal sums price times amount over the cart lines.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.Price == nil || item.Amount == nil {
			continue
		}
		total += *item.Price * float64(*item.Amount)
	}
	return total
}

func availableOnly(items []models.MenuItem) []models.MenuItem {
	available := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable() {
			available = append(available, item)
		}
	}
	return available
}

// uniqueCategories returns "all" followed by each distinct category in
// first-seen order.
func uniqueCategories(items []models.MenuItem) []string {
	categories := []string{"all"}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.Category == nil || seen[*item.Category] {
			continue
		}
		seen[*item.Category] = true
		categories = append(categories, *item.Category)
	}
	return categories
}
