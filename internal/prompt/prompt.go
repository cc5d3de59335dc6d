package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"neomdb-deploy/internal/release"
)

// AskFunc matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Survey asks on the terminal. Opts is passed to every question, which lets
// callers point stdio somewhere else; Ask defaults to survey.AskOne.
type Survey struct {
	Opts []survey.AskOpt
	Ask  AskFunc
}

var _ release.Prompter = (*Survey)(nil)

const (
	environmentMessage = "Enter the environment (prod/dev/test):"
	versionMessage     = "Enter the version number (X.Y.Z):"
	teardownMessage    = "Stop containers? (y/n):"
)

func (s *Survey) ask(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	ask := s.Ask
	if ask == nil {
		ask = survey.AskOne
	}
	return ask(p, response, append(opts, s.Opts...)...)
}

func (s *Survey) Environment() (result string, _ error) {
	err := s.ask(&survey.Select{
		Message: environmentMessage,
		Options: release.EnvironmentChoices,
		Default: release.EnvironmentChoices[0],
	}, &result)
	return result, err
}

func (s *Survey) Version() (result string, _ error) {
	err := s.ask(&survey.Input{
		Message: versionMessage,
	}, &result, survey.WithValidator(survey.Required))
	return result, err
}

// ConfirmTeardown reads a free-form answer: only an exact "y" stops the
// containers, any other input (including "yes" or "Y") leaves them running.
func (s *Survey) ConfirmTeardown() (bool, error) {
	var answer string
	if err := s.ask(&survey.Input{Message: teardownMessage}, &answer); err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Interrupted reports whether err came from the operator pressing Ctrl-C at a prompt.
func Interrupted(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
