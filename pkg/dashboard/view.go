// Package dashboard derives the values a contract list shows: a display
// name, the creation date and the actions the current status allows. None of
// them are stored.
package dashboard

import (
	"strings"
	"time"

	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
)

// Untitled is shown when a contract has no usable name field.
const Untitled = "Untitled"

// ContractView is a contract plus its derived projections.
type ContractView struct {
	models.Contract

	DisplayName string             `json:"display_name"`
	CreatedDate string             `json:"created_date"`
	Actions     []lifecycle.Action `json:"actions"`
}

// DisplayName returns the value of the first field whose label contains
// "name" in any case. Missing fields, empty values and non-text values give
// Untitled.
func DisplayName(c *models.Contract) string {
	for _, f := range c.Fields {
		if !strings.Contains(strings.ToLower(f.Label), "name") {
			continue
		}

		if v := f.String(); v != "" {
			return v
		}

		return Untitled
	}

	return Untitled
}

// FormatDate renders a creation instant as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

// NewContractView projects c for display.
func NewContractView(c *models.Contract) ContractView {
	return ContractView{
		Contract:    *c,
		DisplayName: DisplayName(c),
		CreatedDate: FormatDate(c.CreatedAt),
		Actions:     lifecycle.Actions(c.Status),
	}
}

// Views projects every contract, keeping order.
func Views(contracts []*models.Contract) []ContractView {
	views := make([]ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, NewContractView(c))
	}

	return views
}
