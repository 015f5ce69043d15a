package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatTrade formats an executed transaction into a Telegram message.
func FormatTrade(tx *model.Transaction) string {
	var b strings.Builder
	icon := "🟢"
	if !tx.Action.IsBuy() {
		icon = "🔴"
	}
	b.WriteString(fmt.Sprintf("%s <b>%s %s</b>\n\n", icon, tx.Action, tx.Symbol))
	b.WriteString(fmt.Sprintf("Quantity: %s\n", humanize.Commaf(tx.Quantity)))
	b.WriteString(fmt.Sprintf("Price: $%s\n", humanize.CommafWithDigits(tx.Price, 2)))
	b.WriteString(fmt.Sprintf("Total: $%s\n", humanize.CommafWithDigits(tx.Quantity*tx.Price, 2)))
	if tx.Rationale != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", tx.Rationale))
	}
	return b.String()
}

// FormatDailyReport formats the end-of-day portfolio summary.
func FormatDailyReport(state *model.PortfolioState, prices map[string]float64, total, holdingsValue float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Daily Report</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Cash: $%s\n", humanize.CommafWithDigits(state.Cash, 2)))
	b.WriteString(fmt.Sprintf("Holdings value: $%s\n", humanize.CommafWithDigits(holdingsValue, 2)))
	b.WriteString(fmt.Sprintf("Total: $%s\n", humanize.CommafWithDigits(total, 2)))

	symbols := make([]string, 0, len(state.Holdings))
	for s := range state.Holdings {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	wrote := false
	for _, s := range symbols {
		qty := state.Holdings[s]
		if qty == 0 {
			continue
		}
		if !wrote {
			b.WriteString("\n<b>Positions:</b>\n")
			wrote = true
		}
		if price, ok := prices[s]; ok {
			b.WriteString(fmt.Sprintf("  %s: %s @ $%s\n", s, humanize.Commaf(qty), humanize.CommafWithDigits(price, 2)))
		} else {
			b.WriteString(fmt.Sprintf("  %s: %s (price unavailable)\n", s, humanize.Commaf(qty)))
		}
	}

	b.WriteString(fmt.Sprintf("\nTrades recorded: %d", len(state.History)))
	return b.String()
}
