package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Executor starts an assembled command line. It exists so commands can be
// recorded in tests instead of spawning a real engine.
type Executor interface {
	// Start starts commandLine without waiting for it to exit
	Start(ctx context.Context, commandLine string) error
}

// ShellExecutor runs command lines through the platform shell, since the
// command line carries its own quoting and free-form custom parameters.
//
// With sh, $, ` and \ inside a double-quoted path are escaped so a file
// named "$HOME.wad" is passed literally. A path containing " still ends
// the quoted span early. Text outside quotes, such as custom parameters, is
// left to the shell. cmd.exe receives the line unchanged.
type ShellExecutor struct{}

// Start implements Executor
func (ShellExecutor) Start(ctx context.Context, commandLine string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Not CommandContext: cancelling ctx must not kill a running game.
	name, args := shellCommand(commandLine)
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", commandLine, err)
	}

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release engine process: %w", err)
	}
	return nil
}

func shellCommand(commandLine string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", commandLine}
	}
	return "sh", []string{"-c", escapeQuoted(commandLine)}
}

// escapeQuoted backslash-escapes the characters sh still expands inside
// double quotes
func escapeQuoted(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted && (r == '$' || r == '`' || r == '\\'):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
