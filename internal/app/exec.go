package app

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dshills/xxcmd/internal/record"
)

// ExecFunc replaces the running process, like syscall.Exec.
type ExecFunc func(argv0 string, argv []string, envv []string) error

func defaultExec(argv0 string, argv []string, envv []string) error {
	return syscall.Exec(argv0, argv, envv)
}

// Execute echoes the command unless disabled, then replaces the process
// with "<shell> -c <command>". It only returns on failure, or when an
// injected ExecFunc returns.
func (app *Application) Execute(r *record.Record) error {
	if r == nil || r.Command == "" {
		return nil
	}

	shell, err := resolveShell(app.cfg.Exec.Shell)
	if err != nil {
		return &OperationError{Op: "exec", Target: app.cfg.Exec.Shell, Err: err}
	}

	if app.cfg.Exec.EchoCommands {
		fmt.Fprintln(app.stdout, r.Command)
	}
	app.log.WithComponent("exec").Info("exec %s -c %q", shell, r.Command)

	argv := []string{filepath.Base(shell), "-c", r.Command}
	if err := app.exec(shell, argv, app.environ()); err != nil {
		return &OperationError{Op: "exec", Target: shell, Err: err}
	}
	return nil
}

// resolveShell returns an executable path for a shell given by name or
// path.
func resolveShell(shell string) (string, error) {
	if shell == "" {
		return "", errors.New("no shell configured")
	}
	if strings.ContainsRune(shell, filepath.Separator) {
		return shell, nil
	}
	return exec.LookPath(shell)
}
