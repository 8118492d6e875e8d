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
	"context"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vocquiz",
	Short: "Vocabulary quiz and dictation trainer for a spreadsheet dictionary",
	Long: `vocquiz quizzes you on a dictionary of words, pronunciations and translations
published as a CSV spreadsheet. Questions are drawn with a configurable weighting
over the dictionary order, and recently asked entries are held back for a while.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) {
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("source", "", "dictionary CSV URL or file path")
	flags.Bool("offline", false, "read the dictionary from the local cache only")
	flags.Bool("cache", true, "keep a local sqlite copy of the dictionary")
	flags.String("range", "", "quizzed slice of the dictionary, e.g. 0,50 or all")
	flags.String("filter", "", "CEL expression selecting records, e.g. position >= 100")
	flags.Bool("sound", false, "speak words through the configured speech command")
	flags.String("language", "", "speech language tag, e.g. zh-CN")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text or json)")

	bindFlagToViper("source.url", flags.Lookup("source"))
	bindFlagToViper("cache.offline", flags.Lookup("offline"))
	bindFlagToViper("cache.enabled", flags.Lookup("cache"))
	bindFlagToViper("quiz.test_range", flags.Lookup("range"))
	bindFlagToViper("quiz.filter", flags.Lookup("filter"))
	bindFlagToViper("quiz.sound", flags.Lookup("sound"))
	bindFlagToViper("speech.language", flags.Lookup("language"))
	bindFlagToViper("log.level", flags.Lookup("log-level"))
	bindFlagToViper("log.format", flags.Lookup("log-format"))
}
