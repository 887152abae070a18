package cli

import (
	"os"
	"path/filepath"

	"github.com/prodcat/prodcat/internal/adapters/inbound/shell"
	"github.com/spf13/cobra"
)

func newShellCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive catalog menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			rl, err := shell.NewReadline(shellHistoryFile())
			if err != nil {
				return err
			}
			defer rl.Close()

			sh := shell.New(s.svc, rl, rl.Stdout(), s.log, shell.Options{
				Indent:      s.cfg.IndentWidth(),
				ClearScreen: s.cfg.ClearScreenEnabled(),
				ListFormat:  s.cfg.ListFormat,
			})
			return sh.Run()
		},
	}
}

func shellHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".prodcat_history")
}
