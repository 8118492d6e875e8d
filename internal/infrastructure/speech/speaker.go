// Package speech plays words through an external text-to-speech program.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
)

// Speaker says text aloud and blocks until playback finishes.
type Speaker interface {
	Say(ctx context.Context, text string, lang entity.Language) error
}

// CommandSpeaker runs `<command> <voiceFlag> <lang> <text>`, e.g. `espeak-ng -v zh-CN 你好`.
type CommandSpeaker struct {
	command   string
	voiceFlag string
	run       func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func (s *CommandSpeaker) Say(ctx context.Context, text string, lang entity.Language) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var args []string
	if s.voiceFlag != "" {
		args = append(args, s.voiceFlag, lang.CodeOrDefault())
	}
	args = append(args, text)
	if out, err := s.run(ctx, s.command, args...); err != nil {
		return fmt.Errorf("%s: %w: %s", s.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Nop discards speech.
type Nop struct{}

func (Nop) Say(context.Context, string, entity.Language) error { return nil }

// New returns a CommandSpeaker when the configured program is installed and a
// Nop speaker otherwise. A missing program is only reported when sound is on.
func New(cfg *config.Config, logger logrus.FieldLogger) Speaker {
	command := strings.TrimSpace(cfg.Speech.Command)
	if command == "" {
		return Nop{}
	}
	path, err := exec.LookPath(command)
	if err != nil {
		if cfg.Quiz.Sound {
			logger.Warnf("speech command %q not found, sound disabled", command)
		}
		return Nop{}
	}
	return &CommandSpeaker{command: path, voiceFlag: cfg.Speech.VoiceFlag, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
