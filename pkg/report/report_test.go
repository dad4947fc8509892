package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usacct/usacct/pkg/accounting"
)

func TestBuild_RanksAndOmitsIdle(t *testing.T) {
	usage := []accounting.UserUsage{
		{UID: 1, Name: "alice", CPUMillis: 1500},
		{UID: 2, Name: "bob", CPUMillis: 0},
		{UID: 3, Name: "carol", CPUMillis: 3200},
	}

	rows := Build(usage)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Rank: 1, User: "carol", CPUMillis: 3200}, rows[0])
	assert.Equal(t, Row{Rank: 2, User: "alice", CPUMillis: 1500}, rows[1])

	// The input keeps its own order.
	assert.Equal(t, "alice", usage[0].Name)
}

func TestBuild_TiesKeepInputOrder(t *testing.T) {
	usage := []accounting.UserUsage{
		{UID: 1, Name: "first", CPUMillis: 700},
		{UID: 2, Name: "second", CPUMillis: 700},
		{UID: 3, Name: "third", CPUMillis: 900},
	}

	rows := Build(usage)
	require.Len(t, rows, 3)
	assert.Equal(t, "third", rows[0].User)
	assert.Equal(t, "first", rows[1].User)
	assert.Equal(t, "second", rows[2].User)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]accounting.UserUsage{{UID: 9, Name: "idle", CPUMillis: 0}}))
}

func TestTotal(t *testing.T) {
	rows := []Row{{1, "a", 300}, {2, "b", 200}}
	assert.EqualValues(t, 500, Total(rows))
	assert.EqualValues(t, 0, Total(nil))
}

func TestWriteTable_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []Row{
		{Rank: 1, User: "carol", CPUMillis: 3200},
		{Rank: 2, User: "alice", CPUMillis: 1500},
	})
	require.NoError(t, err)

	want := "" +
		"RANK  USER   CPU TIME (MS)\n" +
		"----  ----   -------------\n" +
		"1     carol  3200\n" +
		"2     alice  1500\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "RANK")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Row{{Rank: 1, User: "carol", CPUMillis: 3200}}))
	assert.JSONEq(t, `[{"rank":1,"user":"carol","cpu_millis":3200}]`, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, Build(nil)))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Row{
		{Rank: 1, User: "carol", CPUMillis: 3200},
		{Rank: 2, User: "user with, comma", CPUMillis: 10},
	})
	require.NoError(t, err)

	want := "rank,user,cpu_millis\n1,carol,3200\n2,\"user with, comma\",10\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, []Row{
		{Rank: 1, User: "carol", CPUMillis: 3200},
		{Rank: 2, User: "<script>x</script>", CPUMillis: 100},
	}, Summary{Samples: 10})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<td style=\"text-align:left\">carol</td>")
	assert.Contains(t, out, "3200")

	// Hostile names arrive escaped.
	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
