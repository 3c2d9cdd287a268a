// SPDX-License-Identifier: MIT

// Command lualg runs dense matrix operations over a matrix document.
//
//	lualg det   -f sys.yaml
//	lualg solve -f sys.yaml --precision 3
//	lualg lu    -f sys.yaml --format yaml
//
// The document holds a grid "a" and, for mul and solve, a grid "b"; see the
// matrixio package. Without --file the document is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	logging "github.com/ipfs/go-log/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/matrixio"
)

var log = logging.Logger("lualg")

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	file      string
	precision int
	logLevel  string
	format    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "lualg",
		Short:         "dense matrix algebra and LU-based linear solves",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.file, "file", "f", "", "matrix document (yaml or json); stdin when empty")
	pf.IntVar(&o.precision, "precision", 6, "digits after the decimal point in table output")
	pf.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&o.format, "format", formatTable, "output format (table, yaml)")

	root.AddCommand(
		o.command("mul", "multiply a by b", runMul),
		o.command("lu", "LU decomposition of a (L, U, swap history, parity)", runLU),
		o.command("det", "determinant of a", runDet),
		o.command("inv", "inverse of a", runInv),
		o.command("solve", "solve a·x = b for a single column b", runSolve),
	)

	return root
}

// setup applies the logging level to every subsystem and checks the output flags.
func (o *options) setup() error {
	level, err := logging.LevelFromString(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	logging.SetAllLoggers(level)

	if o.format != formatTable && o.format != formatYAML {
		return fmt.Errorf("invalid --format %q: want %s or %s", o.format, formatTable, formatYAML)
	}
	if o.precision < 0 {
		return fmt.Errorf("invalid --precision %d: must be >= 0", o.precision)
	}

	return nil
}

type opFunc func(doc *matrixio.Document) (*matrixio.Result, error)

// command wires one operation: load the document, run op, render the result.
func (o *options) command(use, short string, op opFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := op(doc)
			if err != nil {
				log.Debugw("operation failed", "op", use, "err", err)
				return fmt.Errorf("%s: %w", use, err)
			}
			res.Op = use

			return o.render(cmd.OutOrStdout(), res)
		},
	}
}

func (o *options) load(stdin io.Reader) (*matrixio.Document, error) {
	if o.file == "" {
		log.Debugw("reading document", "source", "stdin")
		return matrixio.Decode(stdin)
	}
	log.Debugw("reading document", "source", o.file)

	return matrixio.Load(o.file)
}

func runMul(doc *matrixio.Document) (*matrixio.Result, error) {
	a, b, err := doc.RequireB()
	if err != nil {
		return nil, err
	}
	c, err := matrix.Mul(a, b)
	if err != nil {
		return nil, err
	}

	return &matrixio.Result{Matrix: c.Grid()}, nil
}

func runLU(doc *matrixio.Document) (*matrixio.Result, error) {
	a, _, err := doc.Operands()
	if err != nil {
		return nil, err
	}
	l, u, err := a.LU()
	if err != nil {
		return nil, err
	}
	d, err := a.Decomposition()
	if err != nil {
		return nil, err
	}

	return &matrixio.Result{
		L:           l.Grid(),
		U:           u.Grid(),
		Permutation: d.Permutation,
		Parity:      d.Parity,
	}, nil
}

func runDet(doc *matrixio.Document) (*matrixio.Result, error) {
	a, _, err := doc.Operands()
	if err != nil {
		return nil, err
	}
	det, err := a.Determinant()
	if err != nil {
		return nil, err
	}

	return &matrixio.Result{Determinant: &det}, nil
}

func runInv(doc *matrixio.Document) (*matrixio.Result, error) {
	a, _, err := doc.Operands()
	if err != nil {
		return nil, err
	}
	inv, err := a.Inverse()
	if err != nil {
		return nil, err
	}

	return &matrixio.Result{Matrix: inv.Grid()}, nil
}

func runSolve(doc *matrixio.Document) (*matrixio.Result, error) {
	a, b, err := doc.RequireB()
	if err != nil {
		return nil, err
	}
	x, err := a.Solve(b)
	if err != nil {
		return nil, err
	}

	return &matrixio.Result{Matrix: x.Grid()}, nil
}

// render writes res as YAML or as one table per produced quantity.
func (o *options) render(w io.Writer, res *matrixio.Result) error {
	if o.format == formatYAML {
		return matrixio.Encode(w, res)
	}

	if res.Determinant != nil {
		if err := o.table(w, []string{"determinant"}, [][]string{{o.num(*res.Determinant)}}); err != nil {
			return err
		}
	}
	if res.Matrix != nil {
		if err := o.grid(w, res.Op, res.Matrix); err != nil {
			return err
		}
	}
	if res.L != nil {
		if err := o.grid(w, "L", res.L); err != nil {
			return err
		}
		if err := o.grid(w, "U", res.U); err != nil {
			return err
		}
		perm := make([]string, len(res.Permutation))
		for i, p := range res.Permutation {
			perm[i] = strconv.Itoa(p)
		}
		if err := o.table(w, []string{"step", "swapped row"}, enumerate(perm)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "parity: %d\n", res.Parity); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	return nil
}

func (o *options) grid(w io.Writer, title string, g [][]float64) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	header := make([]string, len(g[0]))
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = o.num(v)
		}
	}

	return o.table(w, header, rows)
}

// table renders one bordered table with side borders only and verbatim headers.
func (o *options) table(w io.Writer, header []string, rows [][]string) error {
	t := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.Off, Bottom: tw.Off},
		})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	t.Header(cells...)
	if err := t.Bulk(rows); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (o *options) num(v float64) string {
	return strconv.FormatFloat(v, 'f', o.precision, 64)
}

func enumerate(values []string) [][]string {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{strconv.Itoa(i), v}
	}

	return rows
}
