package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// ExecCommandRepository runs external commands with os/exec.
type ExecCommandRepository struct {
	shell string
}

var _ repositories.CommandRepository = (*ExecCommandRepository)(nil)

const defaultShell = "/bin/sh"

// NewExecCommandRepository creates a runner that hands command lines to /bin/sh.
func NewExecCommandRepository() *ExecCommandRepository {
	return &ExecCommandRepository{shell: defaultShell}
}

func (it *ExecCommandRepository) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (it *ExecCommandRepository) Output(
	ctx context.Context,
	dir, name string,
	args ...string,
) (*entities.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	logger.Debugf("Running %q in %s", commandLine, dir)

	exitCode, err := exitCodeOf(cmd.Run())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", commandLine, err)
	}

	result := &entities.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
	if !result.Success() {
		logger.Debugf("%q exited with code %d:\n%s", commandLine, exitCode, result.Stderr)
	}
	return result, nil
}

func (it *ExecCommandRepository) Run(ctx context.Context, dir, commandLine string) (int, error) {
	cmd := exec.CommandContext(ctx, it.shell, "-c", commandLine)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debugf("Running %q in %s", commandLine, dir)

	exitCode, err := exitCodeOf(cmd.Run())
	if err != nil {
		return exitCode, fmt.Errorf("%s: %w", commandLine, err)
	}
	return exitCode, nil
}

// exitCodeOf separates "the process ran and exited non-zero" from "the
// process could not be run at all".
func exitCodeOf(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
