package stepzen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shankar0909/stepzen-gql-soap/internal/generator"
)

// alreadyInitialized is the recognizable fragment the CLI prints when
// init runs inside an existing workspace. Matching it is a fallback
// only; the marker probe below is the primary check.
const alreadyInitialized = "already a StepZen workspace"

// workspaceMarkers are files or directories whose presence identifies
// an initialized workspace without shelling out.
var workspaceMarkers = []string{"stepzen.config.json", ".stepzen"}

// Workspace manages one API's deploy directory.
type Workspace struct {
	dir    string
	runner *Runner
	log    *log.Logger
}

// NewWorkspace creates a Workspace rooted at dir.
func NewWorkspace(dir string, runner *Runner, logger *log.Logger) *Workspace {
	if logger == nil {
		logger = log.Default()
	}
	return &Workspace{dir: dir, runner: runner, log: logger}
}

// Init makes sure dir is an initialized StepZen workspace. Existing
// workspaces are detected by marker files first; when init runs anyway
// and the CLI reports an existing workspace, that is treated as
// success. Any other failure is fatal.
func (w *Workspace) Init(ctx context.Context) error {
	if w.initialized() {
		w.log.Info("workspace already initialized", "dir", w.dir)
		return nil
	}

	w.log.Info("initializing workspace", "dir", w.dir)
	if _, err := w.runner.Run(ctx, w.dir, "init"); err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, alreadyInitialized) {
			w.log.Info("workspace already initialized", "dir", w.dir)
			return nil
		}
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	return nil
}

func (w *Workspace) initialized() bool {
	for _, marker := range workspaceMarkers {
		if _, err := os.Stat(filepath.Join(w.dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// Deploy publishes the endpoint. The generated files are parked in the
// process working directory while the deploy runs and are restored on
// every exit path, deploy failure included.
func (w *Workspace) Deploy(ctx context.Context, name string) (err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	rel, err := relocate(w.dir, cwd, generator.IndexFileName, generator.SchemaFileName)
	if err != nil {
		return err
	}
	defer func() {
		if restoreErr := rel.restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	w.log.Info("deploying endpoint", "name", name, "dir", w.dir)
	if _, err := w.runner.Run(ctx, "", "deploy", name, "--dir", w.dir); err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	w.log.Info("endpoint deployed", "name", name)
	return nil
}
