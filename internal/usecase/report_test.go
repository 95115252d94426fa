package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confluence-poster/internal/domain/model"
)

func pipeWithRules(id string, rules ...model.Rule) model.Pipe {
	return model.Pipe{
		ID: id,
		Config: model.PipeConfig{Effective: model.EffectiveConfig{
			Metadata: &model.Metadata{Notifications: &model.Notifications{Rules: rules}},
		}},
	}
}

func rule(typ, desc string) model.Rule {
	return model.Rule{Type: typ, Description: desc}
}

func TestPipesWithNotifications(t *testing.T) {
	noMetadata := model.Pipe{ID: "no-metadata"}
	noNotifications := model.Pipe{ID: "no-notifications", Config: model.PipeConfig{
		Effective: model.EffectiveConfig{Metadata: &model.Metadata{}},
	}}
	emptyRules := pipeWithRules("empty-rules")
	first := pipeWithRules("z-first", rule("email", "a"))
	second := pipeWithRules("a-second", rule("slack", "b"))

	got := PipesWithNotifications([]model.Pipe{noMetadata, first, noNotifications, emptyRules, second})

	require.Len(t, got, 2)
	assert.Equal(t, "z-first", got[0].ID)
	assert.Equal(t, "a-second", got[1].ID)
}

func TestPipesWithNotifications_Empty(t *testing.T) {
	assert.Empty(t, PipesWithNotifications(nil))
}

func TestBuildReport_Scenario(t *testing.T) {
	pipes := []model.Pipe{
		pipeWithRules("p2", rule("slack", "d1")),
		pipeWithRules("p1", rule("email", "d2")),
	}

	report, err := BuildReport(pipes)
	require.NoError(t, err)

	assert.Equal(t, []string{"slack", "email"}, report.RuleTypes)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "p1", report.Rows[0].ID)
	assert.Equal(t, "p2", report.Rows[1].ID)
	assert.Equal(t, model.BlankCell, report.Rows[0].Cell("slack"))
	assert.Equal(t, "d2;  ", report.Rows[0].Cell("email"))
	assert.Equal(t, "d1;  ", report.Rows[1].Cell("slack"))
}

func TestBuildReport_PreservesDescriptionOrderAndDuplicates(t *testing.T) {
	pipes := []model.Pipe{
		pipeWithRules("orders",
			rule("email", "first"),
			rule("slack", "alert"),
			rule("email", "second"),
			rule("email", "first"),
		),
	}

	report, err := BuildReport(pipes)
	require.NoError(t, err)

	assert.Equal(t, []string{"email", "slack"}, report.RuleTypes)
	row := report.Rows[0]
	assert.Equal(t, []string{"first;  ", "second;  ", "first;  "}, row.RulesByType["email"])
	assert.Equal(t, "first;  second;  first;  ", row.Cell("email"))
	assert.True(t, row.Has("slack"))
	assert.False(t, row.Has("sms"))
}

func TestBuildReport_FirstSeenColumnOrder(t *testing.T) {
	pipes := []model.Pipe{
		pipeWithRules("b", rule("sms", "x"), rule("email", "y")),
		pipeWithRules("a", rule("email", "z"), rule("pager", "w"), rule("sms", "v")),
	}

	report, err := BuildReport(pipes)
	require.NoError(t, err)

	assert.Equal(t, []string{"sms", "email", "pager"}, report.RuleTypes)
	assert.Equal(t, "a", report.Rows[0].ID)
	assert.Equal(t, model.BlankCell, report.Rows[1].Cell("pager"))
}

func TestBuildReport_SortIsStableForEqualIDs(t *testing.T) {
	pipes := []model.Pipe{
		pipeWithRules("dup", rule("email", "one")),
		pipeWithRules("aaa", rule("email", "zero")),
		pipeWithRules("dup", rule("email", "two")),
	}

	report, err := BuildReport(pipes)
	require.NoError(t, err)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "aaa", report.Rows[0].ID)
	assert.Equal(t, "one;  ", report.Rows[1].Cell("email"))
	assert.Equal(t, "two;  ", report.Rows[2].Cell("email"))
}

func TestBuildReport_ByteWiseIDOrder(t *testing.T) {
	pipes := []model.Pipe{
		pipeWithRules("beta", rule("email", "x")),
		pipeWithRules("Zeta", rule("email", "x")),
		pipeWithRules("alpha", rule("email", "x")),
	}

	report, err := BuildReport(pipes)
	require.NoError(t, err)

	ids := make([]string, 0, len(report.Rows))
	for _, r := range report.Rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"Zeta", "alpha", "beta"}, ids)
}

func TestBuildReport_NoPipes(t *testing.T) {
	report, err := BuildReport(nil)
	require.NoError(t, err)

	assert.Empty(t, report.RuleTypes)
	assert.Empty(t, report.Rows)
}

func TestBuildReport_RejectsUnfilteredPipe(t *testing.T) {
	_, err := BuildReport([]model.Pipe{{ID: "bare"}})

	assert.ErrorIs(t, err, ErrNoNotificationRules)
	assert.Contains(t, err.Error(), "bare")
}
