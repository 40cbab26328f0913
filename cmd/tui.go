package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/davidgmz15/tagsense/internal/tui"
)

func NewTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [TRAIN_FILE]",
		Short: "Interactively classify typed posts",
		Long: `Trains on TRAIN_FILE and opens an interactive session: type post
text and see every tag ranked by score, live. With no TRAIN_FILE, offers
a picker over the .csv files in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainFile := ""
			if len(args) > 0 {
				trainFile = args[0]
			} else {
				var err error
				trainFile, err = pickTrainFile()
				if err != nil {
					return err
				}
			}

			m, err := trainFromFile(trainFile)
			if err != nil {
				return err
			}
			if m.TotalDocuments() == 0 {
				return fmt.Errorf("training file %s contains no posts", trainFile)
			}

			session := tui.NewSession(m)
			p := tea.NewProgram(session, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}
}

func pickTrainFile() (string, error) {
	matches, err := filepath.Glob("*.csv")
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("no .csv files in the current directory, pass TRAIN_FILE explicitly")
	}

	prompt := &survey.Select{
		Message: "Choose a training file:",
		Options: matches,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
