package cli

import (
	"strconv"

	"sharapu/internal/filter"
	"sharapu/internal/format"
	"sharapu/internal/model"
	"sharapu/internal/selection"

	"github.com/spf13/cobra"
)

type facetCount struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Configured bool   `json:"configured,omitempty"`
}

type facetList []facetCount

func (l facetList) Table() format.Table {
	t := format.Table{Header: []string{"LABEL", "COUNT"}}
	for _, f := range l {
		t.Rows = append(t.Rows, []string{f.Label, strconv.Itoa(f.Count)})
	}
	return t
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories (configured chips first) with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadItems(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			configured := make(map[string]bool, len(app.cfg.Categories))
			labels := append([]string(nil), app.cfg.Categories...)
			for _, c := range labels {
				configured[c] = true
			}
			found, _ := filter.Facets(all)
			for _, c := range found {
				if !configured[c] {
					labels = append(labels, c)
				}
			}

			counts := filter.Counts(all, labels, selection.Empty())
			out := make(facetList, 0, len(labels))
			for _, l := range labels {
				out = append(out, facetCount{Label: l, Count: counts[l], Configured: configured[l]})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadItems(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			_, tags := filter.Facets(all)
			out := make(facetList, 0, len(tags))
			for _, tag := range tags {
				st := selection.Empty().SelectTags(model.NewTagSet(tag))
				out = append(out, facetCount{Label: tag, Count: len(filter.Apply(all, st))})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
