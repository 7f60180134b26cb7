package reporter

import (
	"fmt"
	"strconv"

	"specsim/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, footer []string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	// Headers keep the casing they were given.
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	if len(footer) > 0 {
		f := make(table.Row, columns)
		for i := 0; i < columns && i < len(footer); i++ {
			f[i] = footer[i]
		}
		tw.AppendFooter(f)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func score(s float64) string {
	return strconv.FormatFloat(s, 'f', 4, 64)
}

// NeighborTable renders a neighbor list. name may be nil.
func NeighborTable(list models.NeighborList, name func(id int) string) string {
	rows := make([][]string, len(list))
	for i, n := range list {
		label := ""
		if name != nil {
			label = name(n.ProductID)
		}
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(n.ProductID), label, score(n.Score)}
	}
	return renderTable(
		[]string{"Rank", "Product", "Name", "Similarity"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignRight},
		nil,
	)
}

// ComparisonTable renders similarity against matching scores.
func ComparisonTable(cmp Comparison) string {
	rows := make([][]string, len(cmp.Rows))
	for i, r := range cmp.Rows {
		rows[i] = []string{strconv.Itoa(r.ProductID), score(r.Similarity), score(r.Matching)}
	}
	return renderTable(
		[]string{"Product", "Similarity", "Matching"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight},
		[]string{"Mean difference", score(cmp.MeanDiff), ""},
	)
}

// CoverageTable renders where each curated item landed in the model's list.
func CoverageTable(rows []CoverageRow) string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		rank, s := "absent", "-"
		if r.Ranked {
			rank, s = strconv.Itoa(r.Rank), score(r.Score)
		}
		out[i] = []string{strconv.Itoa(r.ProductID), rank, s}
	}
	return renderTable(
		[]string{"Curated product", "Model rank", "Similarity"},
		out,
		[]columnAlignment{alignRight, alignRight, alignRight},
		nil,
	)
}

// StatsTable renders word count statistics.
func StatsTable(stats WordCountStats) string {
	return renderTable(
		[]string{"Statistic", "Words"},
		[][]string{
			{"Products", strconv.Itoa(stats.Count)},
			{"RMS", fmt.Sprintf("%d", int(stats.RMS))},
			{"Average", fmt.Sprintf("%d", int(stats.Mean))},
			{"Maximum", strconv.Itoa(stats.Max)},
			{"Minimum", strconv.Itoa(stats.Min)},
		},
		[]columnAlignment{alignLeft, alignRight},
		nil,
	)
}
