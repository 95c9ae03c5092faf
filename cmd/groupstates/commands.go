// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seb-eis/Mocassin-sub007/energies"
	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

type groupReport struct {
	Interaction string              `yaml:"interaction"`
	Complete    bool                `yaml:"complete"`
	Orders      int                 `yaml:"orders,omitempty"`
	Equivalent  []string            `yaml:"equivalent,omitempty"`
	States      []string            `yaml:"states,omitempty"`
	Energies    map[string][]string `yaml:"energies,omitempty"`
}

func newStatesCmd(a *app) *cobra.Command {
	var skipFiltered bool
	cmd := &cobra.Command{
		Use:   "states MODEL",
		Short: "List the unique occupation states of every group interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			analyzer, err := m.Analyzer(energies.WithLogger(a.logger), energies.WithWorkers(a.settings.Workers))
			if err != nil {
				return err
			}
			interactions := m.Interactions
			if skipFiltered {
				if interactions, err = m.ActiveInteractions(analyzer, a.logger); err != nil {
					return err
				}
			}
			groups, err := analyzer.CreateExtendedPositionGroups(cmd.Context(), interactions)
			if err != nil {
				return err
			}

			indicators := make([]*symmetry.Indicator, len(interactions))
			for i, gi := range interactions {
				if gi.Deprecated || len(gi.Geometry) == 0 {
					continue
				}
				ind, err := analyzer.GroupSymmetryIndicator(gi)
				if err != nil {
					return err
				}
				indicators[i] = &ind
			}
			equivalent := equivalentGroups(interactions, indicators, a.settings.IndicatorComparer())

			reports := make([]groupReport, len(groups))
			for i, g := range groups {
				reports[i] = reportGroup(g)
				reports[i].Equivalent = equivalent[i]
			}
			return writeYAML(cmd, reports)
		},
	}
	cmd.Flags().BoolVar(&skipFiltered, "skip-filtered", false, "drop interactions matched by the model filters")

	return cmd
}

func reportGroup(g *energies.ExtendedPositionGroup) groupReport {
	r := groupReport{Interaction: g.Interaction().ID, Complete: g.IsComplete()}
	if !r.Complete {
		return r
	}
	r.Orders = len(g.PointOperationGroup().UniqueSelfProjectionOrders())
	for _, s := range g.OccupationStates() {
		r.States = append(r.States, s.String())
	}
	r.Energies = make(map[string][]string)
	for _, p := range g.Center().Occupation.Particles() {
		for _, s := range g.OccupationStates() {
			e, _ := g.Energy(p, s)
			r.Energies[p.String()] = append(r.Energies[p.String()], fmt.Sprintf("%s=%g", s, e))
		}
	}

	return r
}

// equivalentGroups lists, per interaction, the other interactions with a
// matching symmetry indicator. A nil indicator never matches.
func equivalentGroups(gis []energies.GroupInteraction, indicators []*symmetry.Indicator, c symmetry.IndicatorComparer) [][]string {
	out := make([][]string, len(gis))
	for i, a := range indicators {
		if a == nil {
			continue
		}
		for j, b := range indicators {
			if i != j && b != nil && c.Equal(*a, *b) {
				out[i] = append(out[i], gis[j].ID)
			}
		}
	}

	return out
}

func newPairsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs MODEL",
		Short: "List the particle pairs between center and neighbors of every group interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			analyzer, err := m.Analyzer(energies.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := make(map[string][]string, len(m.Interactions))
			for _, gi := range m.Interactions {
				pairs, err := analyzer.GetAllGroupPairs(gi)
				if err != nil {
					return err
				}
				out[gi.ID] = pairNames(pairs)
			}
			return writeYAML(cmd, out)
		},
	}
}

func pairNames(pairs []particles.SymPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.String()
	}

	return out
}

type siteReport struct {
	Group        string   `yaml:"group"`
	Position     string   `yaml:"position"`
	Multiplicity int      `yaml:"multiplicity"`
	Operations   []string `yaml:"site_operations"`
	Wyckoff      []string `yaml:"wyckoff"`
}

func newSiteSymCmd(a *app) *cobra.Command {
	var (
		index     int
		specifier string
	)
	cmd := &cobra.Command{
		Use:   "sitesym A B C",
		Short: "Print the site symmetry and Wyckoff set of a fractional position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var coords [3]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("coordinate %d: %w", i, err)
				}
				coords[i] = v
			}
			group, err := a.catalogue.Find(index, specifier)
			if err != nil {
				return err
			}
			service, err := symmetry.NewService(group, a.settings.ServiceOptions()...)
			if err != nil {
				return err
			}

			p := vector.NewFractional3D(coords[0], coords[1], coords[2])
			r := siteReport{Group: group.Entry.String(), Position: p.String()}
			for _, op := range service.MultiplicityOperations(p, true) {
				r.Operations = append(r.Operations, op.Literal())
			}
			for _, w := range service.WyckoffPositions(p) {
				r.Wyckoff = append(r.Wyckoff, w.String())
			}
			r.Multiplicity = len(r.Wyckoff)
			return writeYAML(cmd, r)
		},
	}
	cmd.Flags().IntVar(&index, "group", 1, "space group index")
	cmd.Flags().StringVar(&specifier, "specifier", "", "space group setting, first setting if empty")

	return cmd
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
