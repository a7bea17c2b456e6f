package main

import (
	"fmt"
	"strings"

	"gofood/pkg/api"
	"gofood/screen"
	"gofood/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C72828"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C80"))
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#39B100"))
	favStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C72828"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	helpStyle    = mutedStyle.Italic(true)
	promptStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#C72828")).
	Padding(0, 1)

func renderLoading() string {
	return mutedStyle.Render("Carregando...")
}

func render(v screen.View) string {
	if !v.Loaded {
		return renderLoading()
	}

	heart := "♡"
	if v.Favorite {
		heart = favStyle.Render("♥")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(v.Food.Name), heart)
	if v.Food.Description != "" {
		b.WriteString(mutedStyle.Render(v.Food.Description) + "\n")
	}
	b.WriteString(priceStyle.Render(v.Food.FormattedPrice) + "\n")

	if len(v.Extras) > 0 {
		b.WriteString(sectionStyle.Render("Adicionais") + "\n")
		for _, x := range v.Extras {
			fmt.Fprintf(&b, "  [%d] %-20s %s  x%d\n", x.ID, x.Name, utils.FormatValue(x.Value), x.Quantity)
		}
	}

	b.WriteString(sectionStyle.Render("Total do pedido") + "\n")
	fmt.Fprintf(&b, "  %s  x%d", priceStyle.Render(v.FormattedTotal), v.Quantity)

	return cardStyle.Render(b.String())
}

func renderReceipt(r *api.OrderReceipt) string {
	return fmt.Sprintf("%s %s (%s x%d) %s",
		priceStyle.Render("✔ pedido"),
		r.Code,
		r.Name,
		r.Quantity,
		utils.FormatValue(decimal.NewFromFloat(r.Total)),
	)
}
