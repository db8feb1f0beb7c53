package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/app/messaging"
	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/infrastructure/random"
	"github.com/bnema/colorline/internal/logging"
)

var execOpts struct {
	messages  string
	selection selectionFlags
	seed      uint64
	output    string
}

var execCmd = &cobra.Command{
	Use:   "exec FILE",
	Short: "Apply a stream of JSON messages to a document",
	Long: `Replay newline-delimited JSON messages against one document, in order.
Blank lines and lines starting with # are skipped. A failing message is
reported and the rest still run.

Each message looks like:
  {"action":"makeColor","mode":"colorSelectedText","startColor":"#ff0000",
   "endColor":"#0000ff","steps":"10","selection":{"start":"h1"}}

Actions: makeColor, showPreview, clearPreview, updateStyles, saveSettings.
Messages without a selection use --start/--end or --match/--match-end.`,
	Args: cobra.ExactArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)

	f := execCmd.Flags()
	f.StringVar(&execOpts.messages, "messages", stdio, "JSON-lines message file (- for stdin)")
	execOpts.selection.register(execCmd)
	f.Uint64Var(&execOpts.seed, "seed", 0, "seed the random walk for reproducible output")
	f.StringVarP(&execOpts.output, "output", "o", "", "write the document here instead of stdout")
}

func runExec(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path := args[0]
	if path == stdio && execOpts.messages == stdio {
		return errors.New("document and messages cannot both come from stdin")
	}

	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	var messages io.Reader = cmd.InOrStdin()
	if execOpts.messages != stdio {
		f, err := os.Open(execOpts.messages)
		if err != nil {
			return fmt.Errorf("failed to open messages: %w", err)
		}
		defer f.Close()
		messages = f
	}

	var rnd port.RandomSource = random.New()
	if cmd.Flags().Changed("seed") {
		rnd = random.NewSeeded(execOpts.seed)
	}

	handler := messaging.NewHandler(
		doc,
		usecase.NewColorizeUseCase(rnd),
		app.PreviewUC,
		app.SettingsUC,
		app.SettingsUC.Defaults(),
	)
	handler.SetSelection(execOpts.selection.source())

	ctx := logging.WithComponent(logging.WithDocument(app.Ctx(), path), "messaging")
	results, replayErr := handler.Replay(ctx, messages)

	if err := writeDocument(cmd, doc, execOpts.output); err != nil {
		return err
	}

	report := reportWriter(cmd, execOpts.output)
	for _, res := range results {
		fmt.Fprintln(report, "  "+describeResult(res))
	}
	if replayErr != nil {
		return fmt.Errorf("some messages failed:\n%w", replayErr)
	}
	return nil
}

func describeResult(res *messaging.Result) string {
	switch {
	case res.Ignored:
		return fmt.Sprintf("%s: ignored", res.Action)
	case res.Action == messaging.ActionMakeColor:
		return fmt.Sprintf("%s: %d text nodes, %d characters", res.Action, res.Units, res.Characters)
	case res.Action == messaging.ActionShowPreview:
		return fmt.Sprintf("%s: %d elements highlighted", res.Action, res.Highlighted)
	case res.Action == messaging.ActionClearPreview:
		return fmt.Sprintf("%s: %d highlights removed", res.Action, res.Cleared)
	case res.Saved != nil:
		return fmt.Sprintf("%s: profile %s stored", res.Action, res.Saved.Profile)
	default:
		return res.Action + ": ok"
	}
}
