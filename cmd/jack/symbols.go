package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

// sampleTime is the instant used to show date and time layouts.
var sampleTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

func newSymbolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols TAG",
		Short: "Show the number, currency and date conventions of a locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", args[0], err)
			}

			p := locale.Default()
			matched, conf := p.Match(tag)
			s := p.Symbols(tag)
			prefix, suffix := s.PercentAffixes()

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			rows := [][2]string{
				{"tag", s.Tag().String()},
				{"layouts from", fmt.Sprintf("%s (%s)", matched, conf)},
				{"decimal separator", fmt.Sprintf("%q", s.DecimalSeparator())},
				{"group separator", fmt.Sprintf("%q", s.GroupSeparator())},
				{"minus sign", fmt.Sprintf("%q", s.MinusSign())},
				{"zero digit", fmt.Sprintf("%q", s.ZeroDigit())},
				{"percent", fmt.Sprintf("%q %q", prefix, suffix)},
				{"currency", fmt.Sprintf("%q %s", s.CurrencySymbol(), s.CurrencyPosition())},
				{"number", s.Number(true, "1234567", "89")},
				{"percentage", s.Percent(false, "12", "5")},
				{"money", s.Currency(false, "1234", "50")},
				{"date", s.Date(sampleTime)},
				{"time", s.Time(sampleTime)},
				{"datetime", s.DateTime(sampleTime)},
			}
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
			}
			return tw.Flush()
		},
	}
}
