// Package cli runs interactive quiz and dictation sessions over a line-based
// terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/usecase"
)

// ErrInputClosed is returned when the terminal input ends mid-session.
var ErrInputClosed = errors.New("input closed")

// Speaker plays text aloud.
type Speaker interface {
	Say(ctx context.Context, text string, lang entity.Language) error
}

// Runner reads answers from in and writes prompts and verdicts to out.
type Runner struct {
	quiz    usecase.QuizUsecase
	speaker Speaker
	in      *bufio.Scanner
	out     io.Writer
	logger  logrus.FieldLogger
}

func NewRunner(quiz usecase.QuizUsecase, speaker Speaker, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Runner {
	return &Runner{
		quiz:    quiz,
		speaker: speaker,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// prompt is what the in-answer commands act on while a field is being asked.
type prompt struct {
	spoken string
	// helpSpeaks makes "help" play the spoken text instead of printing the alphabet.
	helpSpeaks bool
}

// RunQuiz asks rounds questions in mode and returns the number answered correctly.
func (r *Runner) RunQuiz(ctx context.Context, rounds int, mode entity.Mode) (int, error) {
	width := len(strconv.Itoa(rounds))
	score := 0
	fmt.Fprintln(r.out)

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return score, err
		}
		q, err := r.quiz.SelectQuestion(mode)
		if err != nil {
			return score, err
		}
		fmt.Fprintf(r.out, "%0*d/%d: %s is: %s\n", width, i+1, rounds, q.Category, q.Prompt)

		p := prompt{spoken: q.Prompt, helpSpeaks: q.Category == entity.CategoryWord && r.quiz.Settings().Sound}
		if p.helpSpeaks {
			r.say(ctx, q.Prompt)
		}

		var word, pronunciation, translation string
		switch q.Category {
		case entity.CategoryPronunciation:
			if word, err = r.ask(ctx, "\t• word: ", p); err == nil {
				translation, err = r.ask(ctx, "\t• translation: ", p)
			}
		case entity.CategoryWord:
			if pronunciation, err = r.ask(ctx, "\t• pronunciation: ", p); err == nil {
				translation, err = r.ask(ctx, "\t• translation: ", p)
			}
		case entity.CategoryTranslation:
			if word, err = r.ask(ctx, "\t• word: ", p); err == nil {
				pronunciation, err = r.ask(ctx, "\t• pronunciation: ", p)
			}
		}
		if err != nil {
			return score, err
		}

		if r.quiz.VerifyAnswer(word, pronunciation, translation) {
			score++
			fmt.Fprint(r.out, "🎉🎉🎉 true\n\n")
			continue
		}
		sol := q.Solution()
		fmt.Fprintf(r.out, "💥💥💥 false answer: word: %s, pronunciation: %s, translation: %s\n\n",
			sol.Word, sol.Pronunciation, sol.Translation)
	}

	fmt.Fprintf(r.out, "End, score=%0*d/%d\n\n", width, score, rounds)
	return score, nil
}

// RunDictation shows the pronunciation of n words, asks for each word in
// writing and returns the number written correctly.
func (r *Runner) RunDictation(ctx context.Context, n int) (int, error) {
	words, err := r.quiz.SelectDictationSet(n)
	if err != nil {
		return 0, err
	}
	index := r.quiz.Session().Index()
	width := len(strconv.Itoa(len(words)))
	score := 0
	fmt.Fprintln(r.out)

	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return score, err
		}
		fmt.Fprintf(r.out, "%0*d/%d: pronunciation is: %s\n", width, i+1, len(words), index.Raw.WordPronunciation[w])

		sound := r.quiz.Settings().Sound
		if sound {
			r.say(ctx, w)
		}
		written, err := r.ask(ctx, "\t• word: ", prompt{spoken: w, helpSpeaks: sound})
		if err != nil {
			return score, err
		}
		if usecase.VerifyDictation(w, written) {
			score++
			fmt.Fprint(r.out, "🎉🎉🎉 true\n\n")
			continue
		}
		fmt.Fprintf(r.out, "💥💥💥 false answer: word: %s\n\n", w)
	}

	fmt.Fprintf(r.out, "End, score=%0*d/%d\n\n", width, score, len(words))
	return score, nil
}

// Confirm asks a yes/no question; only "y" or "yes" is a yes.
func (r *Runner) Confirm(label string) (bool, error) {
	fmt.Fprint(r.out, label)
	line, err := r.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ask reads lines until one is an answer, serving in-answer commands on the way.
func (r *Runner) ask(ctx context.Context, label string, p prompt) (string, error) {
	for {
		fmt.Fprint(r.out, label)
		line, err := r.readLine()
		if err != nil {
			return "", err
		}

		in := ParseInput(line)
		switch in.Kind {
		case InputAnswer:
			return in.Text, nil
		case InputHelp:
			if p.helpSpeaks {
				r.say(ctx, p.spoken)
			} else {
				fmt.Fprintln(r.out, r.quiz.Session().Index().Alphabet())
			}
		case InputSound:
			if !r.quiz.Settings().Sound {
				fmt.Fprintln(r.out, "sound is off, enable it with: set sound=true")
				continue
			}
			r.say(ctx, p.spoken)
		case InputSettings:
			fmt.Fprint(r.out, r.quiz.Settings().String())
		case InputSet:
			if err := r.quiz.ApplySetting(in.Text); err != nil {
				fmt.Fprintf(r.out, "setting rejected: %v\n", err)
			} else {
				fmt.Fprintf(r.out, "%s applied\n", in.Text)
			}
		}
	}
}

func (r *Runner) readLine() (string, error) {
	if r.in.Scan() {
		return r.in.Text(), nil
	}
	if err := r.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", ErrInputClosed
}

func (r *Runner) say(ctx context.Context, text string) {
	if err := r.speaker.Say(ctx, text, r.quiz.Settings().Language); err != nil {
		r.logger.Warnf("speech failed: %v", err)
	}
}
