// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ik5/lectorx"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderSummary(res *lectorx.Result, rate int, diffPath, sumPath string) string {
	rows := [][]string{
		{"Lag", fmt.Sprintf("%d samples (%.3f ms)", res.Lag, res.LagMillis(rate))},
	}
	if res.Search != nil {
		rows = append(rows,
			[]string{"Score", fmt.Sprintf("%g", res.Search.Score)},
			[]string{"Candidates", fmt.Sprintf("%s of %s rescored",
				humanize.Comma(int64(res.Search.Evaluated)),
				humanize.Comma(int64(res.Search.Candidates)))},
		)
	}
	rows = append(rows,
		[]string{"Alpha", fmt.Sprintf("%.4f", res.Alpha)},
		[]string{"Aligned", fmt.Sprintf("%s samples (%.2f s)",
			humanize.Comma(int64(res.A.Len())), res.A.Duration(rate))},
		[]string{"Difference", outputCell(diffPath)},
		[]string{"Sum", outputCell(sumPath)},
	)

	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func outputCell(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return path
	}
	return fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size())))
}
