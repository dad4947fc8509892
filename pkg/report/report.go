// Package report renders ranked per-user CPU usage in several formats.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/usacct/usacct/pkg/accounting"
	"github.com/usacct/usacct/pkg/types"
)

// Row is one line of the ranked report.
type Row struct {
	Rank      int          `json:"rank"`
	User      string       `json:"user"`
	CPUMillis types.Millis `json:"cpu_millis"`
}

// Build turns accumulated usage into ranked rows: owners with nothing
// attributed are dropped, the rest are ordered by CPU time descending
// (input order preserved on ties) and ranked contiguously from 1.
func Build(usage []accounting.UserUsage) []Row {
	sorted := slices.Clone(usage)
	slices.SortStableFunc(sorted, func(a, b accounting.UserUsage) int {
		switch {
		case a.CPUMillis > b.CPUMillis:
			return -1
		case a.CPUMillis < b.CPUMillis:
			return 1
		default:
			return 0
		}
	})

	rows := make([]Row, 0, len(sorted))
	for _, u := range sorted {
		if u.CPUMillis <= 0 {
			continue
		}
		rows = append(rows, Row{Rank: len(rows) + 1, User: u.Name, CPUMillis: u.CPUMillis})
	}
	return rows
}

// Total sums the CPU time across rows.
func Total(rows []Row) types.Millis {
	var t types.Millis
	for _, r := range rows {
		t += r.CPUMillis
	}
	return t
}

// WriteTable renders rows as an aligned text table with a header and
// separator line.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tUSER\tCPU TIME (MS)")
	fmt.Fprintln(tw, "----\t----\t-------------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", r.Rank, r.User, r.CPUMillis)
	}
	return tw.Flush()
}

// WriteJSON renders rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteCSV renders rows as CSV with a header record.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "user", "cpu_millis"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			strconv.Itoa(r.Rank),
			r.User,
			strconv.FormatInt(int64(r.CPUMillis), 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary carries the run-level numbers shown around the per-user rows.
type Summary struct {
	Window   time.Duration
	Interval time.Duration
	Samples  int
}

// WriteHTML renders a self-contained HTML report. User names are
// template-escaped, so hostile login names cannot inject markup.
func WriteHTML(w io.Writer, rows []Row, sum Summary) error {
	data := struct {
		Rows    []Row
		Total   types.Millis
		Sum     Summary
		Created string
	}{rows, Total(rows), sum, time.Now().Format("2006-01-02 15:04:05")}
	return tpl.Execute(w, data)
}

var tpl = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>User CPU Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
</style>

<h1>User CPU Report</h1>

<p class="small">
Users: {{len .Rows}} &nbsp;|&nbsp;
Total: {{.Total.Humanized}} &nbsp;|&nbsp;
Generated: {{.Created}}
</p>

<h2>Summary</h2>
<ul>
<li>Window: {{.Sum.Window}}</li>
<li>Interval: {{.Sum.Interval}}</li>
<li>Samples: {{.Sum.Samples}}</li>
<li>Total CPU: {{.Total.Humanized}}</li>
</ul>

<h2>Per-user</h2>
<table>
<thead>
<tr><th>rank</th><th>user</th><th>CPU time (ms)</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Rank}}</td>
<td style="text-align:left">{{.User}}</td>
<td>{{printf "%d" .CPUMillis}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
