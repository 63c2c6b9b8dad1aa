package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables read by et and passed to extensions.
const (
	EnvStore    = "ET_STORE"
	EnvCurrency = "ET_CURRENCY"
	EnvVerbose  = "ET_VERBOSE"
)

// RunExtension attempts to find and execute an external et-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "et-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found in PATH", "cmd", externalCmdName, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables, resolved the same way as
	// the builtin commands do.
	cmd.Env = os.Environ()
	if path, err := StorePath(); err == nil {
		cmd.Env = append(cmd.Env, EnvStore+"="+path)
	}
	if cur, err := Currency(); err == nil {
		cmd.Env = append(cmd.Env, EnvCurrency+"="+cur.Code())
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(Verbose()))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
