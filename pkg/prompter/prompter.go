package prompter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Interactive reports whether stdin is a terminal. Prompts refuse to
// run against a non-terminal so scripted invocations fail fast instead
// of hanging on a read.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func ensureInteractive() error {
	if !Interactive() {
		return fmt.Errorf("interactive prompt requires a terminal; pass values via flags instead")
	}
	return nil
}

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	if err := ensureInteractive(); err != nil {
		return "", err
	}
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptInt prompts for an integer
func PromptInt(label string) (int, error) {
	input, err := PromptString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", input)
	}
	return value, nil
}

// PromptFloat prompts for a decimal amount
func PromptFloat(label string) (float64, error) {
	input, err := PromptString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("not an amount: %s", input)
	}
	return value, nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	if err := ensureInteractive(); err != nil {
		return false, err
	}
	fmt.Print(label + " (y/n) ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	if err := ensureInteractive(); err != nil {
		return -1, err
	}
	fmt.Println(label)
	for i, opt := range options {
		fmt.Printf("%d) %s\n", i+1, opt)
	}

	fmt.Print("Select option: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return -1, err
	}

	input = strings.TrimSpace(input)

	var selection int
	_, err = fmt.Sscanf(input, "%d", &selection)
	if err != nil {
		return -1, err
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}
