package deployer

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/TheLeggett/Summer-Breeze/internal/util"
	"github.com/rs/zerolog"
)

// NotStartedCode is the sentinel exit code reported when the deployer binary
// could not be located or started at all, as opposed to running and failing.
const NotStartedCode = -1

// Result holds the captured outcome of one deployer invocation.
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// OK reports whether the invocation ran and exited successfully.
func (r Result) OK() bool {
	return r.Code == 0
}

// Runner executes the deployer binary with an argument list and captures its
// output. Implementations never return an error: a binary that cannot start
// is reported through [NotStartedCode] and an explanatory Stderr, so callers
// handle every failure the same way.
type Runner interface {
	Run(args ...string) Result
}

// ExecRunner shells out to the sc64deployer binary. Each call is synchronous
// and blocks until the subprocess exits; no timeout is enforced.
type ExecRunner struct {
	path string
	dir  string
	log  zerolog.Logger
}

// NewExecRunner creates a runner for the deployer at path, executing with
// dir as the working directory so install-relative paths resolve predictably.
func NewExecRunner(path, dir string) *ExecRunner {
	return &ExecRunner{
		path: path,
		dir:  dir,
		log:  util.GetLogger("deployer"),
	}
}

func (r *ExecRunner) Run(args ...string) Result {
	cmd := exec.Command(r.path, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug().Strs("args", args).Msg("invoking deployer")
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitCode()
		} else {
			// Binary missing or not executable: never surface as an error,
			// only as a failed result.
			res.Code = NotStartedCode
			res.Stderr = fmt.Sprintf("Error: sc64deployer not found at %s", r.path)
		}
	}
	r.log.Debug().Int("code", res.Code).Int("stdout_len", len(res.Stdout)).Msg("deployer finished")
	return res
}

var _ Runner = (*ExecRunner)(nil)
