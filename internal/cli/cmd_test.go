package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/testutil"
)

var cliNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory store for CLI tests.
func testApp(t *testing.T) *App {
	t.Helper()
	s, _ := testutil.NewTestStore(t)
	return &App{
		Store:         s,
		Calendar:      aggregate.Calendar{WeekStart: time.Sunday, Now: func() time.Time { return cliNow }},
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command against a fresh root.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	return root.Execute()
}

func TestStartStopFlow(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "start"))
	sess, ok := app.Store.InProgress()
	require.True(t, ok)
	assert.True(t, sess.StartTime.Equal(cliNow))

	require.NoError(t, executeCmd(t, app, "stop", "--note", "wrote tests", "--company", "Acme"))
	_, ok = app.Store.InProgress()
	assert.False(t, ok, "stop must clear the in-progress session")

	records := app.Store.List()
	require.Len(t, records, 1)
	assert.Equal(t, "wrote tests", records[0].Note)
	assert.Equal(t, "Acme", records[0].CompanyName)
	assert.True(t, records[0].StartTime.Equal(cliNow))
}

func TestStop_NoSession(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "stop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session in progress")
}

func TestStart_ReplacesExistingSession(t *testing.T) {
	app := testApp(t)
	earlier := cliNow.Add(-2 * time.Hour)
	require.NoError(t, app.Store.SaveInProgress(context.Background(), earlier))

	require.NoError(t, executeCmd(t, app, "start"))
	sess, ok := app.Store.InProgress()
	require.True(t, ok)
	assert.True(t, sess.StartTime.Equal(cliNow), "second start replaces, never stacks")
}

func TestAbandon(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Store.SaveInProgress(context.Background(), cliNow))

	require.NoError(t, executeCmd(t, app, "abandon"))
	_, ok := app.Store.InProgress()
	assert.False(t, ok)
	assert.Empty(t, app.Store.List(), "abandon must not create a record")
}

func TestDelete_ByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r := testutil.NewTestRecord(cliNow, 2)
	require.NoError(t, app.Store.Add(ctx, r))

	require.NoError(t, executeCmd(t, app, "delete", r.ID[:8]))
	assert.Empty(t, app.Store.List())
}

func TestEdit_WithFlags(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r := testutil.NewTestRecord(cliNow, 2)
	require.NoError(t, app.Store.Add(ctx, r))

	require.NoError(t, executeCmd(t, app, "edit", r.ID,
		"--start", "2025-06-18 08:00",
		"--end", "2025-06-18 11:30",
		"--company", "Globex"))

	got := app.Store.List()
	require.Len(t, got, 1)
	assert.Equal(t, r.ID, got[0].ID)
	assert.Equal(t, 3.5, got[0].TotalHours)
	assert.Equal(t, "Globex", got[0].CompanyName)
}

func TestEdit_RejectsBadTime(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r := testutil.NewTestRecord(cliNow, 2)
	require.NoError(t, app.Store.Add(ctx, r))

	err := executeCmd(t, app, "edit", r.ID, "--start", "yesterday-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

func TestCompanyCommands(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "company", "add", "Acme"))
	require.NoError(t, executeCmd(t, app, "company", "add", "Globex"))
	assert.Equal(t, []string{"Acme", "Globex"}, app.Store.Companies())

	require.NoError(t, executeCmd(t, app, "company", "remove", "Acme"))
	assert.Equal(t, []string{"Globex"}, app.Store.Companies())
}

func TestSummary_RejectsUnknownWindow(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "summary", "--window", "fortnightly")
	require.Error(t, err)
}

func TestHistory_RequiresFrom(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "history")
	require.Error(t, err)
}

func TestResolveRecordIDs_Ambiguous(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r1 := testutil.NewTestRecord(cliNow, 1)
	r2 := testutil.NewTestRecord(cliNow, 1)
	r1.ID = "aaaa1111-0000-0000-0000-000000000000"
	r2.ID = "aaaa2222-0000-0000-0000-000000000000"
	require.NoError(t, app.Store.Add(ctx, r1))
	require.NoError(t, app.Store.Add(ctx, r2))

	_, err := resolveRecordIDs(app, []string{"aaaa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestRenderSummary_ContainsStats(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.Add(ctx, testutil.NewTestRecord(cliNow.Add(-3*time.Hour), 3)))

	res := aggregate.Aggregate(app.Store.List(), aggregate.Weekly, aggregate.AnyCompany(), app.Calendar)
	out := renderSummary(res)
	assert.Contains(t, out, "WEEKLY")
	assert.Contains(t, out, "3h")
}

func TestSummaryModel_CyclesWindowAndFilter(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Store.AddCompany(context.Background(), "Acme"))

	m := newSummaryModel(app, aggregate.Weekly, aggregate.AnyCompany())
	assert.Equal(t, aggregate.Weekly, m.window)

	m.window = cycleWindow(m.window, 1)
	assert.Equal(t, aggregate.BiWeekly, m.window)
	m.window = cycleWindow(m.window, 1)
	assert.Equal(t, aggregate.Monthly, m.window)
	m.window = cycleWindow(m.window, 1)
	assert.Equal(t, aggregate.Weekly, m.window)

	require.Len(t, m.filters, 3, "All, Acme, Other")
	assert.Equal(t, "All", m.filters[0].String())
	assert.Equal(t, "Acme", m.filters[1].String())
	assert.Equal(t, "Other", m.filters[2].String())
}

func TestParseTimeArg(t *testing.T) {
	got, err := parseTimeArg("2025-06-18 09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())

	_, err = parseTimeArg("not a time")
	assert.Error(t, err)
}
