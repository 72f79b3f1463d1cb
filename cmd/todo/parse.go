package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todo-assistant/internal/assistant"
)

var parseCmd = &cobra.Command{
	Use:   "parse INSTRUCTION",
	Short: "Turn a free-text instruction into tasks",
	Long: `Sends the instruction to the model and prints the normalized tasks for review.

With --commit the tasks are created right away, unless an item has errors.
Without it the batch stays open for review through the API until it expires.`,
	Example: `  todo parse "submit the report tomorrow at 5pm, gym every morning next week"
  todo parse --commit "call mom tonight"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("commit", false, "create the tasks when no item has errors")
	parseCmd.Flags().String("api-key", "", "model API key (default from config)")
	parseCmd.Flags().String("model", "", "model name (default from config)")
	parseCmd.Flags().Float64("temperature", 0, "sampling temperature (default from config)")
	parseCmd.Flags().Int("max-output-tokens", 0, "output token budget (default from config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	sess := a.Session
	if v, _ := cmd.Flags().GetString("api-key"); v != "" {
		sess.APIKey = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		sess.Model = v
	}
	if cmd.Flags().Changed("temperature") {
		v, _ := cmd.Flags().GetFloat64("temperature")
		sess.Temperature = &v
	}
	if cmd.Flags().Changed("max-output-tokens") {
		v, _ := cmd.Flags().GetInt("max-output-tokens")
		sess.MaxOutputTokens = &v
	}

	batch, err := a.Assistant.Parse(ctx, sess, assistant.ParseInput{Instruction: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	commit, _ := cmd.Flags().GetBool("commit")
	out := cmd.OutOrStdout()
	if !commit {
		if flagJSON {
			return writeJSON(out, batch)
		}
		printBatch(out, batch, a.DateMath.Location())
		return nil
	}

	if batch.HasErrors() {
		printBatch(cmd.ErrOrStderr(), batch, a.DateMath.Location())
		return fmt.Errorf("%w: nothing was created", assistant.ErrBatchHasErrors)
	}
	res, err := a.Assistant.Commit(ctx, batch.ID)
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(out, res)
	}
	printTasks(out, res.Created, a.DateMath.Location())
	fmt.Fprintln(out, res.Summary)
	if len(res.Created) == 0 {
		return fmt.Errorf("no task was created")
	}
	return nil
}
