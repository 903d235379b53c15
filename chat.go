package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dining-agent/config"
	"dining-agent/models"
	"dining-agent/services"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the agent in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.agent, a.newState(), cfg)
		},
	}
}

// runChat reads guest messages line by line until EOF or /quit
func runChat(ctx context.Context, in io.Reader, out io.Writer, agent *services.Agent, state *services.AppState, cfg *config.Config) error {
	fmt.Fprintf(out, "Dining agent ready, %d venues loaded. Commands: /dashboard, /bookings, /quit\n", len(state.Catalog()))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/dashboard":
			printDashboard(out, services.ComputeDashboard(state.Snapshot()))
			continue
		case "/bookings":
			printBookings(out, state)
			continue
		}

		fmt.Fprintln(out, "Thinking...")
		reply, err := agent.ProcessMessage(ctx, state, line)
		if err != nil {
			fmt.Fprintf(out, "System Error: %v\n", err)
			if hint := cfg.CredentialHint(); hint != "" {
				fmt.Fprintln(out, hint)
			}
			continue
		}
		fmt.Fprintln(out, reply)
	}
}

func printDashboard(out io.Writer, d models.Dashboard) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Projected Revenue\t%s\n", d.Display.ProjectedRevenue)
	fmt.Fprintf(tw, "Conversion Rate\t%s\n", d.Display.ConversionRate)
	fmt.Fprintf(tw, "Staff Hours Saved\t%s\n", d.Display.HoursSaved)
	fmt.Fprintf(tw, "Avg Ticket Size\t%s\n", d.Display.AverageTicket)
	fmt.Fprintf(tw, "Active Bookings\t%d\n", d.ActiveBookings)
	tw.Flush()

	for _, o := range d.Opportunities {
		fmt.Fprintf(out, "[%s] %s: %s\n", o.Level, o.Title, o.Detail)
	}

	if len(d.IntentLog) == 0 {
		return
	}
	fmt.Fprintln(out, "Intent stream:")
	for _, e := range d.IntentLog {
		fmt.Fprintf(out, "  [%s] %s %s\n", e.Timestamp, e.Intent, e.Parameters)
	}
}

func printBookings(out io.Writer, state *services.AppState) {
	reservations := state.Reservations()
	if len(reservations) == 0 {
		fmt.Fprintln(out, "No bookings yet.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRESTAURANT\tPARTY\tTIME\tREVENUE")
	for _, r := range reservations {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", r.ID, r.Restaurant, r.Party, r.Time, r.Revenue)
	}
	tw.Flush()
}
