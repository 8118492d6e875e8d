/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/vocquiz/internal/adapter/cli"
	"github.com/eslsoft/vocquiz/internal/app"
	"github.com/eslsoft/vocquiz/internal/entity"
)

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run quiz rounds over the dictionary",
	Long: `Each question shows one field of a dictionary entry (word, pronunciation or
translation) and asks for the two others. While answering you can type:

  help          print every character used by the quizzed words
  sound, s      speak the prompt
  settings      print the current settings
  set key=value change a setting (sound, test_range, distribution,
                dictation_distribution, retention, language, filter)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		rounds := c.Config.Quiz.Rounds
		if rounds <= 0 {
			return fmt.Errorf("rounds must be positive, got %d", rounds)
		}
		mode, err := entity.ParseMode(c.Config.Quiz.Mode)
		if err != nil {
			return err
		}
		if err := c.Quiz.Reload(ctx); err != nil {
			return err
		}

		runner := cli.NewRunner(c.Quiz, c.Speaker, cmd.InOrStdin(), cmd.OutOrStdout(), c.Logger)
		for {
			if _, err := runner.RunQuiz(ctx, rounds, mode); err != nil {
				if errors.Is(err, cli.ErrInputClosed) {
					return nil
				}
				return err
			}
			again, err := runner.Confirm("New round? y / n:\n")
			if err != nil || !again {
				if errors.Is(err, cli.ErrInputClosed) {
					return nil
				}
				return err
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().Int("rounds", 0, "number of questions per round")
	quizCmd.Flags().String("mode", "", "question category: random, word, pronunciation or translation (or 1-4)")
	quizCmd.Flags().String("distribution", "", "weighting over dictionary positions, e.g. sigmoide_i, uniform, gaussian")
	quizCmd.Flags().Int("retention", 0, "how many recent entries are held back from the draw")

	bindFlagToViper("quiz.rounds", quizCmd.Flags().Lookup("rounds"))
	bindFlagToViper("quiz.mode", quizCmd.Flags().Lookup("mode"))
	bindFlagToViper("quiz.distribution", quizCmd.Flags().Lookup("distribution"))
	bindFlagToViper("quiz.retention", quizCmd.Flags().Lookup("retention"))
}
