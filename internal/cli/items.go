package cli

import (
	"errors"
	"fmt"
	"strings"

	"sharapu/internal/filter"
	"sharapu/internal/format"
	"sharapu/internal/model"
	"sharapu/internal/selection"
	"sharapu/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List and show content items",
	}
	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsShowCmd(app))
	return cmd
}

func newItemsListCmd(app *App) *cobra.Command {
	var (
		category string
		tags     []string
		query    string
		explain  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items matching a category, tags and a search query",
		Long: `List items matching every given filter, in store order.

--tag may be repeated and accepts glob patterns (e.g. 're*'), expanded against
the tags present in the store. --match decides whether an item needs any or
all of the selected tags (config key filter.tags, default any).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadItems(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			_, known := filter.Facets(all)
			selected, unmatched, err := expandTagPatterns(tags, known)
			if err != nil {
				return writeErr(cmd, err)
			}

			sel := selection.NewManager()
			if strings.TrimSpace(category) != "" {
				sel.SelectCategory(category)
			}
			sel.SelectTags(model.NewTagSet(selected...))
			sel.SetQuery(query)
			st := sel.State()

			policy := app.cfg.TagPolicy
			app.log.Debug("filtering",
				zap.Stringer("category", st.Category),
				zap.Strings("tags", st.Tags.Sorted()),
				zap.String("query", st.Query),
				zap.Stringer("match", policy),
			)

			var hints []string
			for _, p := range unmatched {
				hints = append(hints, fmt.Sprintf("tag pattern %q matched no known tag (run `sharapu tags`)", p))
			}

			meta := map[string]any{
				"total":    len(all),
				"category": st.Category,
				"tags":     st.Tags.Sorted(),
				"query":    st.Query,
				"match":    policy.String(),
			}
			if len(unmatched) > 0 {
				meta["unmatchedTags"] = unmatched
			}
			unsatisfiable := tagsUnsatisfiable(selected, unmatched, policy)

			if explain {
				rows := make(explainList, 0, len(all))
				matched := 0
				for _, it := range all {
					ok, reason := filter.Explain(it, st, filter.WithTagPolicy(policy))
					if unsatisfiable {
						ok, reason = false, fmt.Sprintf("tag %q matches no known tag", unmatched[0])
					}
					if ok {
						matched++
					}
					rows = append(rows, explainRow{ID: it.ID, Title: it.Title, Included: ok, Reason: reason})
				}
				meta["matched"] = matched
				return writeOut(cmd, app, map[string]any{"data": rows, "meta": meta, "_hints": hints})
			}

			out := []model.ContentItem{}
			if !unsatisfiable {
				out = filter.Apply(all, st, filter.WithTagPolicy(policy))
			}
			meta["matched"] = len(out)
			if len(out) == 0 && (!st.IsEmpty() || unsatisfiable) {
				hints = append(hints, "no items matched; try --explain to see why")
			}
			return writeOut(cmd, app, map[string]any{"data": itemList(out), "meta": meta, "_hints": hints})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only items in this category (exact label)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag or glob pattern (repeatable)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive text in title, summary or body")
	cmd.Flags().String("match", "any", "Tag policy: any|all")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show every item with the reason it is included or excluded")

	return cmd
}

func newItemsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <item-id>",
		Aliases: []string{"get"},
		Short:   "Show one item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			it, err := s.GetItem(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, fmt.Errorf("item not found: %s (run `sharapu items list`)", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": itemDetail(it)})
		},
	}
	return cmd
}

func openStore(app *App) (store.Store, error) {
	s := app.store()
	if !s.Exists() {
		return s, fmt.Errorf("no content store at %s (run `sharapu init` or `sharapu import <file>`)", s.Path())
	}
	return s, nil
}

func loadItems(cmd *cobra.Command, app *App) ([]model.ContentItem, error) {
	s, err := openStore(app)
	if err != nil {
		return nil, err
	}
	return s.LoadItems(cmd.Context())
}

// itemList is the list output; it also renders as a table.
type itemList []model.ContentItem

func (l itemList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "TITLE", "CATEGORY", "TAGS"}}
	for _, it := range l {
		t.Rows = append(t.Rows, []string{it.ID, it.Title, it.Category, strings.Join(it.Tags.Sorted(), ",")})
	}
	return t
}

type itemDetail model.ContentItem

func (d itemDetail) Table() format.Table {
	published := ""
	if d.PublishedAt != nil {
		published = d.PublishedAt.Format("2006-01-02")
	}
	return format.Table{
		Header: []string{"FIELD", "VALUE"},
		Rows: [][]string{
			{"id", d.ID},
			{"title", d.Title},
			{"category", d.Category},
			{"tags", strings.Join(d.Tags.Sorted(), ",")},
			{"author", d.Author},
			{"published", published},
			{"summary", d.Summary},
		},
	}
}

type explainRow struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Included bool   `json:"included"`
	Reason   string `json:"reason"`
}

type explainList []explainRow

func (l explainList) Table() format.Table {
	t := format.Table{Header: []string{"ID", "INCLUDED", "REASON"}}
	for _, r := range l {
		inc := "no"
		if r.Included {
			inc = "yes"
		}
		t.Rows = append(t.Rows, []string{r.ID, inc, r.Reason})
	}
	return t
}
