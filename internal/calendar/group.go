package calendar

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/colmenar/agenda/internal/plan"
)

// Labeler resolves an action type key to a display label.
type Labeler interface {
	Label(actionType string) string
}

// PlanGroup is the set of plans sharing an action type.
type PlanGroup struct {
	ActionType string
	Label      string
	Plans      []plan.Plan
}

// Grouper partitions plans by action type for the Gantt view.
type Grouper struct {
	Labels Labeler
}

// Group partitions plans by action type (empty -> "otro"). Plans inside a
// group are ordered by scheduled date and groups by label using Spanish
// collation. The input is not modified.
func (g Grouper) Group(plans []plan.Plan) []PlanGroup {
	groups := []PlanGroup{}
	index := make(map[string]int)

	for _, p := range plans {
		key := plan.NormalizeActionType(p.ActionType)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, PlanGroup{ActionType: key, Label: g.label(key)})
		}
		groups[i].Plans = append(groups[i].Plans, p)
	}

	for i := range groups {
		plan.SortByDate(groups[i].Plans)
	}

	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(groups, func(i, j int) bool {
		if r := c.CompareString(groups[i].Label, groups[j].Label); r != 0 {
			return r < 0
		}
		return groups[i].ActionType < groups[j].ActionType
	})
	return groups
}

func (g Grouper) label(key string) string {
	if g.Labels == nil {
		return key
	}
	if l := g.Labels.Label(key); l != "" {
		return l
	}
	return key
}

// Flatten concatenates group plans in group order.
func Flatten(groups []PlanGroup) []plan.Plan {
	var out []plan.Plan
	for _, g := range groups {
		out = append(out, g.Plans...)
	}
	return out
}
