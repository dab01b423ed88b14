package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// PromptYesNo asks a yes/no question. In non-interactive mode the default
// answer is returned without asking.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}
	return u.prompt(prompt, defaultYes)
}

func surveyConfirm(message string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// DetectNonInteractive reports whether prompts must be skipped: on CI, or
// when stdin is not a terminal.
func DetectNonInteractive(env map[string]string) bool {
	if ci := env["CI"]; ci != "" && ci != "false" && ci != "0" {
		return true
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
