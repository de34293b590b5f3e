package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/fatih/color"
)

const (
	nameWidth      = 24
	blueprintWidth = 18
	statusWidth    = 9
	dateWidth      = 10
)

var statusColors = map[models.ContractStatus]*color.Color{
	models.ContractStatusCreated:  color.New(color.FgCyan),
	models.ContractStatusApproved: color.New(color.FgBlue),
	models.ContractStatusSent:     color.New(color.FgYellow),
	models.ContractStatusSigned:   color.New(color.FgGreen),
	models.ContractStatusLocked:   color.New(color.FgMagenta, color.Bold),
	models.ContractStatusRevoked:  color.New(color.FgRed, color.Bold),
}

var header = color.New(color.Bold)

// FormatTable writes the contract list as a table with columns CONTRACT NAME,
// BLUEPRINT, STATUS, CREATED and ACTIONS. Returns the number of rows written.
func FormatTable(w io.Writer, views []ContractView, filter models.StatusFilter) int {
	if len(views) == 0 {
		fmt.Fprintf(w, "No contracts found (status: %s)\n", filter)

		return 0
	}

	header.Fprintf(w, "%-*s %-*s %-*s %-*s %s\n",
		nameWidth, "CONTRACT NAME",
		blueprintWidth, "BLUEPRINT",
		statusWidth, "STATUS",
		dateWidth, "CREATED",
		"ACTIONS",
	)
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", blueprintWidth),
		strings.Repeat("-", statusWidth),
		strings.Repeat("-", dateWidth),
		strings.Repeat("-", 20),
	)

	for _, v := range views {
		fmt.Fprintf(w, "%-*s %-*s %s %-*s %s\n",
			nameWidth, truncate(v.DisplayName, nameWidth),
			blueprintWidth, truncate(v.BlueprintName, blueprintWidth),
			formatStatus(v.Status),
			dateWidth, v.CreatedDate,
			formatActions(v.Actions),
		)
	}

	noun := "contract"
	if len(views) != 1 {
		noun = "contracts"
	}

	fmt.Fprintf(w, "\n%d %s (status: %s)\n", len(views), noun, filter)

	return len(views)
}

// formatStatus pads before coloring so escape codes do not skew the column.
func formatStatus(s models.ContractStatus) string {
	padded := fmt.Sprintf("%-*s", statusWidth, s)

	c, ok := statusColors[s]
	if !ok {
		return padded
	}

	return c.Sprint(padded)
}

func formatActions(actions []lifecycle.Action) string {
	if len(actions) == 0 {
		return "-"
	}

	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}

	return strings.Join(names, ", ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}

	return string(r[:width-3]) + "..."
}
