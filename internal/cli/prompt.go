package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptLine prints a label and reads one trimmed line from stdin.
func PromptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword prints a label and reads a password without echoing it.
func PromptPassword(label string) (string, error) {
	fmt.Print(label)
	password, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(password)), nil
}
