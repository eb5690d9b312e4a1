package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/scaffold/compiler/gen"
)

func rollbackCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback <name>",
		Short: "Remove the artifacts of an entity",
		Long: `Remove the selected artifacts of an entity and undo its route and seeder
registrations. Lists the targets and asks for confirmation unless --force
is given.

Examples:
  scaffold rollback Post --all
  scaffold rollback Post --controller --api --force`,
		Args: cobra.ExactArgs(1),
	}
	kinds := addKindFlags(cmd.Flags(), "Remove")
	options := addOptionFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		engine, err := g.engine(cmd)
		if err != nil {
			return err
		}
		confirm := func(targets []string) bool {
			return prompt(g.stdin, cmd.OutOrStdout(), targets)
		}
		report, err := engine.Rollback(cmd.Context(), gen.Request{
			Name:    args[0],
			Kinds:   kinds.selected(),
			Options: options.opts,
		}, confirm)
		if gen.IsRollbackAborted(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Rollback aborted, nothing was removed.")
			return nil
		}
		if err != nil {
			return err
		}
		return g.finish(cmd, report)
	}
	return cmd
}

// prompt lists the targets and reads a y/N answer. Anything but yes
// declines, including a closed input.
func prompt(in io.Reader, out io.Writer, targets []string) bool {
	if in == nil {
		return false
	}
	fmt.Fprintln(out, "The following artifacts will be removed:")
	for _, t := range targets {
		fmt.Fprintln(out, "  "+color.New(color.FgRed).Sprint("-")+" "+t)
	}
	fmt.Fprint(out, "Proceed? [y/N] ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
