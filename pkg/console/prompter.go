package console

import "github.com/pterm/pterm"

// Prompter implements interactive prompts with pterm.
type Prompter struct{}

// NewPrompter cria um novo Prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Select mostra uma lista de opções e retorna a escolhida.
func (p *Prompter) Select(title string, options []string, defaultOption string) (string, error) {
	printer := pterm.DefaultInteractiveSelect.WithOptions(options)
	if defaultOption != "" {
		printer = printer.WithDefaultOption(defaultOption)
	}
	return printer.Show(title)
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(title string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(defaultValue).Show(title)
}

// Input reads a single line of text.
func (p *Prompter) Input(title, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(defaultValue).Show(title)
}
