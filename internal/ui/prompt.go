package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question. Declining or
// interrupting the prompt is a plain "no".
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		// promptui reports "n" as ErrAbort for confirm prompts
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}

	return result == "y" || result == "Y", nil
}

// ConfirmDangerousAction warns about an irreversible action and asks for confirmation
func ConfirmDangerousAction(action, target string) (bool, error) {
	PrintWarning("You are about to %s: %s", action, target)
	return ConfirmPrompt(fmt.Sprintf("Are you sure you want to %s", action))
}
