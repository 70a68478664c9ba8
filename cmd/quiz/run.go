package main

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bura/internal/submission"
	"bura/internal/tui"
	"bura/internal/wizard"
)

var (
	flowName string
	apiURL   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the questionnaire",
	Long: `Start the interactive questionnaire. Answers are submitted to the lead API
once the last step is done. A failed submission follows SUBMIT_FAILURE_POLICY:
fail_open continues to the WhatsApp link, fail_closed asks you to retry.`,
	RunE: runQuiz,
}

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List the available questionnaires",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, f := range wizard.Flows() {
			ids := make([]string, 0, f.Len())
			for _, s := range f.Steps {
				ids = append(ids, string(s.ID))
			}
			fmt.Fprintf(out, "%-6s %2d steps: %s\n", f.Name, f.Len(), strings.Join(ids, " → "))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&flowName, "flow", "f", wizard.FlowCoach, "questionnaire to run ("+flowNames()+")")
	runCmd.Flags().StringVar(&apiURL, "api", "", "lead API base URL (default SUBMIT_API_URL)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	flow, ok := wizard.Lookup(flowName)
	if !ok {
		return fmt.Errorf("unknown flow %q, want one of: %s", flowName, flowNames())
	}

	base := cfg.SubmitAPIURL
	if apiURL != "" {
		base = apiURL
	}
	client := submission.NewClient(base, cfg.FailurePolicy, logger.Named("submission"), nil)

	model := tui.NewModel(tui.Options{
		Flow:      flow,
		Submitter: client,
		Policy:    client.Policy(),
		BaseURL:   cfg.WhatsAppBaseURL,
		Recipient: cfg.CoachWhatsApp,
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("error running questionnaire: %w", err)
	}
	if m, ok := final.(*tui.Model); ok && m.Link() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), m.Link())
	}
	return nil
}

func flowNames() string {
	names := make([]string, 0, len(wizard.Flows()))
	for _, f := range wizard.Flows() {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
