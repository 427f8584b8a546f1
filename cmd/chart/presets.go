package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
)

// preset is a stored chart configuration for one experiment output.
type preset struct {
	path string
	spec chart.Spec
}

// presets mirror the experiment's two outputs: the per-graph reduction
// ("difference") and the raw equation counts ("result").
var presets = map[string]preset{
	"difference": {
		path: "data-reg-diff.csv",
		spec: chart.Spec{
			Category: "probability",
			Value:    "difference",
			Kind:     chart.Bar,
			Title:    "Reduction in numbers of equations needed for ER\ngraphs after using closures",
			XLabel:   "Probability",
			YLabel:   "Difference in number of equations",
		},
	},
	"result": {
		path: "data-reg.csv",
		spec: chart.Spec{
			Category: "probability",
			Value:    "result",
			Kind:     chart.Box,
			Title:    "Number of equations needed for ER graphs",
			XLabel:   "Probability",
			YLabel:   "Number of equations",
		},
	},
}

func lookupPreset(name string) (preset, error) {
	p, ok := presets[name]
	if !ok {
		return preset{}, fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(presetNames(), ", "))
	}
	return p, nil
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
