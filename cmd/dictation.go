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
)

// dictationCmd represents the dictation command
var dictationCmd = &cobra.Command{
	Use:   "dictation",
	Short: "Write down words from their pronunciation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		if err := c.Quiz.Reload(ctx); err != nil {
			return err
		}
		runner := cli.NewRunner(c.Quiz, c.Speaker, cmd.InOrStdin(), cmd.OutOrStdout(), c.Logger)
		if _, err := runner.RunDictation(ctx, c.Config.Quiz.DictationCount); err != nil && !errors.Is(err, cli.ErrInputClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dictationCmd)

	dictationCmd.Flags().Int("count", 0, "number of words to dictate")
	dictationCmd.Flags().String("distribution", "", "weighting over candidate words, e.g. sigmoide_i, uniform")

	bindFlagToViper("quiz.dictation_count", dictationCmd.Flags().Lookup("count"))
	bindFlagToViper("quiz.dictation_distribution", dictationCmd.Flags().Lookup("distribution"))
}
