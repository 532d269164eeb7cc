package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	querybuilder "github.com/biyonik/go-query-builder"
	"github.com/biyonik/go-query-builder/internal/config"
	"github.com/biyonik/go-query-builder/internal/querydef"
)

// renderOutput is one JSON line of `render --output json`.
type renderOutput struct {
	Name   string `json:"name"`
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>...",
		Short: "Compile query definition files",
		Long: `Compile each YAML query definition and print the SQL and its parameters.

With --strict the query is validated first and the command fails on the
first invalid definition.`,
		Example: `  # Print SQL and a parameter table
  querybuild render queries/active_users.yaml

  # One JSON object per file
  querybuild render queries/*.yaml --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runRender(w io.Writer, paths []string) error {
	for _, path := range paths {
		def, err := querydef.Load(path)
		if err != nil {
			return err
		}

		out, err := a.compile(def)
		if err != nil {
			return err
		}

		switch a.cfg.Output {
		case config.OutputJSON:
			if err := json.NewEncoder(w).Encode(out); err != nil {
				return errors.Wrap(err, "failed to encode output")
			}
		default:
			renderText(w, out)
		}
	}
	return nil
}

func (a *app) compile(def *querydef.Definition) (renderOutput, error) {
	qb := def.Builder(querybuilder.WithLogger(a.logger))
	out := renderOutput{Name: def.Name}

	if a.cfg.Strict {
		sql, params, err := qb.Build()
		if err != nil {
			return out, errors.Wrapf(err, "%s", def.Name)
		}
		out.SQL, out.Params = sql, params
		return out, nil
	}

	out.SQL, out.Params = qb.ToSQL()
	a.logger.Debug("compiled query", slog.String("name", def.Name), slog.Int("params", len(out.Params)))
	return out, nil
}

func renderText(w io.Writer, out renderOutput) {
	_, _ = fmt.Fprintf(w, "-- %s\n%s\n", out.Name, out.SQL)
	if len(out.Params) == 0 {
		_, _ = fmt.Fprintln(w, "(no params)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Value", "Type"})
	for i, p := range out.Params {
		t.AppendRow(table.Row{i + 1, formatValue(p), fmt.Sprintf("%T", p)})
	}
	t.Render()
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}
