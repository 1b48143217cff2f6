package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectArtifact asks the user which of several artifacts named name to use
func (s *SelectorAdapter) SelectArtifact(ctx context.Context, name string, matches []string) (string, error) {
	if len(matches) == 0 {
		return "", fmt.Errorf("no artifacts provided for selection")
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return "", fmt.Errorf("%s is ambiguous and interactive selection is disabled", name)
	}

	options := formatArtifactOptions(matches)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
	}

	promptSelect := promptui.Select{
		Label:             fmt.Sprintf("Multiple artifacts named %s, select one", name),
		Items:             options,
		Templates:         templates,
		Size:              10,
		Searcher:          createFuzzySearchFunc(matches),
		StartInSearchMode: len(matches) > 5,
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return matches[index], nil
}

// Confirm asks a yes/no question. Non-interactive mode answers yes.
func (s *SelectorAdapter) Confirm(ctx context.Context, message string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}

	prompt := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		// promptui reports "n" as ErrAbort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// formatArtifactOptions creates display strings like "Name (File.sol)"
func formatArtifactOptions(matches []string) []string {
	options := make([]string, len(matches))
	for i, ref := range matches {
		file, contract, _ := strings.Cut(ref, ":")
		contractName := color.New(color.FgWhite, color.Bold).Sprint(contract)
		pathStr := color.New(color.FgBlue).Sprint(file)
		options[i] = fmt.Sprintf("%s (%s)", contractName, pathStr)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var (
	_ usecase.ArtifactSelector = (*SelectorAdapter)(nil)
	_ usecase.Confirmer        = (*SelectorAdapter)(nil)
)
