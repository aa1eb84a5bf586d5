// Package report renders ranking results as aligned console tables
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/orchestrators/ranking"
)

const (
	// Probability bands for colouring the new-card column
	likelyThreshold   = 0.75
	possibleThreshold = 0.25

	timeLayout = "2006-01-02 15:04:05 MST"
)

// Config configures a Renderer
type Config struct {
	Out io.Writer
	// Color forces ANSI colours on or off regardless of the terminal
	Color bool
	// Language selects number formatting; defaults to English
	Language language.Tag
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Out == nil {
		return errors.InvalidArgument("output writer cannot be nil")
	}
	return nil
}

// Renderer writes reports to a single writer
type Renderer struct {
	out      io.Writer
	printer  *message.Printer
	likely   *color.Color
	possible *color.Color
	unlikely *color.Color
	bad      *color.Color
}

// New creates a Renderer
func New(cfg *Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}

	r := &Renderer{
		out:      cfg.Out,
		printer:  message.NewPrinter(tag),
		likely:   color.New(color.FgGreen),
		possible: color.New(color.FgYellow),
		unlikely: color.New(color.FgRed),
		bad:      color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.likely, r.possible, r.unlikely, r.bad} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r, nil
}

func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
}

// percent formats a probability with locale-aware separators
func (r *Renderer) percent(p float64) string {
	return r.printer.Sprintf("%.2f%%", p*100)
}

func (r *Renderer) band(p float64) *color.Color {
	switch {
	case p >= likelyThreshold:
		return r.likely
	case p >= possibleThreshold:
		return r.possible
	default:
		return r.unlikely
	}
}

// Ranking writes one row per pack, best first. Verbose adds the per-rarity
// breakdown and the duplicate odds of each slot group.
func (r *Renderer) Ranking(output *ranking.RankOutput, verbose bool) error {
	if output == nil {
		return errors.InvalidArgument("ranking output is required")
	}
	if len(output.Packs) == 0 {
		_, err := fmt.Fprintln(r.out, "No packs to rank; the collection names no expansions.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "#\tEXPANSION\tPACK\tOWNED\tNEW CARD")
	for i, p := range output.Packs {
		pack := p.Pack
		if pack == "" {
			pack = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			p.ExpansionName,
			pack,
			r.printer.Sprintf("%d/%d", p.Result.Owned, p.Result.Total),
			r.band(p.Result.Probability).Sprint(r.percent(p.Result.Probability)))

		if verbose {
			r.writeBreakdown(tw, p)
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write ranking")
	}

	if output.SnapshotID != "" {
		if _, err := fmt.Fprintf(r.out, "\nPublished as %s\n", output.SnapshotID); err != nil {
			return errors.Wrap(err, "failed to write ranking")
		}
	}
	return nil
}

func (r *Renderer) writeBreakdown(w io.Writer, p *ranking.PackOdds) {
	for _, t := range p.Result.Tallies {
		fmt.Fprintf(w, "\t  %s\t%s\t%s\t%s\n",
			t.Rarity,
			t.Rarity.Name(),
			r.printer.Sprintf("%d/%d", t.Owned, t.Total),
			r.percent(t.OwnedFraction()))
	}
	fmt.Fprintf(w, "\t  all duplicates\tslots 1-3 %s\tslot 4 %s\tslot 5 %s\n",
		r.percent(p.Result.DupCommon),
		r.percent(p.Result.DupFourth),
		r.percent(p.Result.DupFifth))
}

// Validation writes the slot totals of every table and any unresolved
// table references
func (r *Renderer) Validation(output *ranking.ValidateOfferingRatesOutput) error {
	if output == nil {
		return errors.InvalidArgument("validation output is required")
	}

	tw := r.table()
	fmt.Fprintln(tw, "TABLE\t4TH CARD\t5TH CARD\tUSED BY")
	for _, t := range output.Tables {
		usedBy := strings.Join(t.UsedBy, ", ")
		if usedBy == "" {
			usedBy = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			t.Name,
			r.total(t.FourthTotal, t.FourthOK),
			r.total(t.FifthTotal, t.FifthOK),
			usedBy)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write validation")
	}

	for _, u := range output.Unresolved {
		if _, err := fmt.Fprintln(r.out, r.bad.Sprintf("expansion %s references unknown table %q", u.ExpansionID, u.Table)); err != nil {
			return errors.Wrap(err, "failed to write validation")
		}
	}

	verdict := "All offering rate tables are valid."
	if !output.Valid() {
		verdict = r.bad.Sprint("Offering rate data has problems.")
	}
	_, err := fmt.Fprintf(r.out, "%s (tolerance %g)\n", verdict, output.Tolerance)
	return err
}

func (r *Renderer) total(total float64, ok bool) string {
	s := r.printer.Sprintf("%.5f", total)
	if ok {
		return s
	}
	return r.bad.Sprint(s + " !")
}

// Packs writes every pack of every expansion
func (r *Renderer) Packs(output *ranking.ListPacksOutput) error {
	if output == nil {
		return errors.InvalidArgument("packs output is required")
	}

	tw := r.table()
	fmt.Fprintln(tw, "EXPANSION\tNAME\tTABLE\tPACK\tCARDS")
	for _, e := range output.Expansions {
		for i, pool := range e.Pools {
			id, name, table := e.ID, e.Name, e.OfferingRateTable
			if i > 0 {
				id, name, table = "", "", ""
			}
			pack := pool.Pack
			if pack == "" {
				pack = "(whole expansion)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, name, table, pack, r.printer.Sprintf("%d", pool.Cards))
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write packs")
	}
	return nil
}

// Snapshots writes one line per published ranking, newest first
func (r *Renderer) Snapshots(output *ranking.ListSnapshotsOutput) error {
	if output == nil {
		return errors.InvalidArgument("snapshots output is required")
	}
	if len(output.Snapshots) == 0 {
		_, err := fmt.Fprintln(r.out, "No published rankings.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "ID\tCREATED\tPACKS\tBEST")
	for _, snap := range output.Snapshots {
		best := "-"
		if len(snap.Entries) > 0 {
			top := snap.Entries[0]
			best = fmt.Sprintf("%s (%s)", top.Key(), r.percent(top.Probability))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", snap.ID, formatTime(snap.CreatedAt), len(snap.Entries), best)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write snapshots")
	}
	return nil
}

// Snapshot writes the best packs of one published ranking
func (r *Renderer) Snapshot(output *ranking.GetSnapshotOutput) error {
	if output == nil || output.Snapshot == nil {
		return errors.InvalidArgument("snapshot output is required")
	}

	if _, err := fmt.Fprintf(r.out, "Ranking %s from %s\n\n", output.Snapshot.ID, formatTime(output.Snapshot.CreatedAt)); err != nil {
		return errors.Wrap(err, "failed to write snapshot")
	}

	tw := r.table()
	fmt.Fprintln(tw, "#\tPACK\tNEW CARD")
	for i, p := range output.Packs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, p.Key, r.band(p.Probability).Sprint(r.percent(p.Probability)))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write snapshot")
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
