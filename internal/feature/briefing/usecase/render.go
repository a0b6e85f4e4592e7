package usecase

import (
	"fmt"
	"strings"

	"briefing_backend/internal/feature/briefing/domain/entity"
)

// RenderMarkdown はブリーフィングレコードをマークダウンテキストに描画します。
func RenderMarkdown(rec *entity.BriefingRecord) string {
	snap := rec.Snapshot

	changeWord := "up"
	changeSign := "+"
	if snap.ChangePercent < 0 {
		changeWord = "down"
		changeSign = ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s - %s Briefing\n\n", rec.Ticker, snap.Name)
	fmt.Fprintf(&b, "**Generated**: %s  \n", rec.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Category**: %s\n\n", rec.Category)
	b.WriteString("---\n\n## Stock Overview\n\n")

	b.WriteString("| Field | Value |\n|------|-----|\n")
	fmt.Fprintf(&b, "| Ticker | %s |\n", rec.Ticker)
	fmt.Fprintf(&b, "| Company | %s |\n", snap.Name)
	fmt.Fprintf(&b, "| Price | $%.2f |\n", snap.Price)
	fmt.Fprintf(&b, "| Change | %s%.2f%% (%s) |\n", changeSign, snap.ChangePercent, changeWord)
	fmt.Fprintf(&b, "| Volume | %s |\n", FormatVolume(snap.Volume))
	fmt.Fprintf(&b, "| Market Cap | %s |\n", snap.MarketCapDisplay)
	fmt.Fprintf(&b, "| Sector | %s |\n", snap.Sector)
	fmt.Fprintf(&b, "| Industry | %s |\n", snap.Industry)
	fmt.Fprintf(&b, "| P/E | %s |\n", snap.PERatioDisplay)

	b.WriteString("\n---\n\n## Related News\n\n")

	if len(rec.News) == 0 {
		b.WriteString("No related news at the moment.\n\n")
	} else {
		for i, n := range rec.News {
			title := n.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, title)
			fmt.Fprintf(&b, "**Source**: %s  \n", n.Source)
			fmt.Fprintf(&b, "**Published**: %s  \n", n.PublishedAt.Format("2006-01-02 15:04"))
			if n.Summary != "" {
				fmt.Fprintf(&b, "**Summary**: %s\n", n.Summary)
			}
			fmt.Fprintf(&b, "\n[Read more](%s)\n\n", n.URL)
		}
	}

	b.WriteString("---\n\n## Analysis\n\n")
	if rec.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", rec.Summary)
	}
	fmt.Fprintf(&b, "%s (%s) was selected by the %s screener.\n\n", snap.Name, rec.Ticker, rec.Category)
	fmt.Fprintf(&b, "- **Price action**: $%.2f, %s%.2f%% %s\n", snap.Price, changeSign, snap.ChangePercent, changeWord)
	fmt.Fprintf(&b, "- **Trading activity**: volume %s\n", FormatVolume(snap.Volume))
	fmt.Fprintf(&b, "- **Profile**: %s sector, %s industry\n", snap.Sector, snap.Industry)
	fmt.Fprintf(&b, "- **Valuation**: P/E %s\n\n", snap.PERatioDisplay)
	b.WriteString("This briefing was generated automatically from live market data.\n")

	return b.String()
}

// FormatVolume は出来高を読みやすい単位付き文字列に変換します。
func FormatVolume(volume int64) string {
	switch {
	case volume >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(volume)/1_000_000)
	case volume >= 1_000:
		return fmt.Sprintf("%.1fK", float64(volume)/1_000)
	default:
		return fmt.Sprintf("%d", volume)
	}
}
