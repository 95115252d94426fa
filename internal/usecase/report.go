package usecase

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"confluence-poster/internal/domain/model"
)

// ErrNoNotificationRules is returned by BuildReport for a pipe that was not
// filtered with PipesWithNotifications first.
var ErrNoNotificationRules = errors.New("pipe has no notification rules")

// PipesWithNotifications keeps the pipes that declare at least one
// notification rule, preserving input order.
func PipesWithNotifications(pipes []model.Pipe) []model.Pipe {
	out := make([]model.Pipe, 0, len(pipes))
	for _, p := range pipes {
		if p.HasNotifications() {
			out = append(out, p)
		}
	}
	return out
}

// BuildReport derives the rule-type by pipe matrix. Rule types are listed in
// the order they are first seen; rows are sorted by pipe id. Every pipe must
// carry at least one rule.
func BuildReport(pipes []model.Pipe) (model.Report, error) {
	ruleTypes := make([]string, 0)
	seen := make(map[string]struct{})
	rows := make([]model.PipeRow, 0, len(pipes))

	for _, p := range pipes {
		rules := p.NotificationRules()
		if len(rules) == 0 {
			return model.Report{}, fmt.Errorf("pipe %q: %w", p.ID, ErrNoNotificationRules)
		}

		row := model.PipeRow{
			ID:          p.ID,
			RuleTypes:   make(map[string]struct{}),
			RulesByType: make(map[string][]string),
		}
		for _, r := range rules {
			if _, ok := seen[r.Type]; !ok {
				seen[r.Type] = struct{}{}
				ruleTypes = append(ruleTypes, r.Type)
			}
			row.RuleTypes[r.Type] = struct{}{}
			row.RulesByType[r.Type] = append(row.RulesByType[r.Type], r.Description+model.DescriptionSuffix)
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b model.PipeRow) int {
		return strings.Compare(a.ID, b.ID)
	})

	return model.Report{RuleTypes: ruleTypes, Rows: rows}, nil
}
