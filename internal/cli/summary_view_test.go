package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/teatest"
	"github.com/mkallio/stint/internal/testutil"
)

func TestSummaryView_KeyNavigation(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.AddCompany(ctx, "Acme"))
	require.NoError(t, app.Store.Add(ctx,
		testutil.NewTestRecord(cliNow.Add(-4*time.Hour), 4, testutil.WithCompany("Acme"))))

	d := teatest.New(t, newSummaryModel(app, aggregate.Weekly, aggregate.AnyCompany()))

	d.Press("right")
	m := d.Model.(*summaryModel)
	assert.Equal(t, aggregate.BiWeekly, m.window)

	d.Press("left")
	d.Press("left")
	m = d.Model.(*summaryModel)
	assert.Equal(t, aggregate.Monthly, m.window, "window cycling wraps")

	d.Press("tab")
	m = d.Model.(*summaryModel)
	assert.Equal(t, "Acme", m.filter.String())

	d.Press("tab")
	m = d.Model.(*summaryModel)
	assert.Equal(t, "Other", m.filter.String())
	assert.Zero(t, m.result.Stats.Total, "Acme hours excluded under the Other filter")

	d.Press("q")
	assert.True(t, d.Quitting)
}

func TestSummaryView_RendersHelp(t *testing.T) {
	app := testApp(t)
	d := teatest.New(t, newSummaryModel(app, aggregate.Weekly, aggregate.AnyCompany()))
	assert.Contains(t, d.View(), "tab company")
}
