package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/shankar0909/stepzen-gql-soap/internal/config"
	"github.com/shankar0909/stepzen-gql-soap/internal/generator"
	"github.com/shankar0909/stepzen-gql-soap/internal/runcache"
	"github.com/shankar0909/stepzen-gql-soap/internal/stepzen"
	"github.com/shankar0909/stepzen-gql-soap/internal/wsdl"
)

// defaultDBPath is where run history lands unless overridden.
const defaultDBPath = "./stepzen-soap.db"

// pipeline carries the collaborators one batch run shares across APIs.
type pipeline struct {
	output       string
	version      generator.SOAPVersion
	skipValidate bool
	fetcher      *wsdl.Fetcher
	runner       *stepzen.Runner
	repo         *runcache.Repository
	log          *log.Logger
}

func (p *pipeline) workspaceDir(api config.API) string {
	return filepath.Join(p.output, api.Dir())
}

// generate fetches, assembles, validates and writes one API's
// artifacts, recording the run in history.
func (p *pipeline) generate(ctx context.Context, api config.API) (*runcache.Run, error) {
	doc, err := p.fetcher.Load(ctx, api.WSDL)
	if err != nil {
		return nil, fmt.Errorf("API %q: %w", api.Name, err)
	}

	result := generator.NewAssembler(p.version, p.log).Assemble(doc)
	if len(result.Operations) == 0 {
		p.log.Warn("WSDL exposes no SOAP operations", "api", api.Name)
	}

	if !p.skipValidate {
		if err := generator.Validate(result.Schema); err != nil {
			return nil, fmt.Errorf("API %q: %w", api.Name, err)
		}
	}

	dir := p.workspaceDir(api)
	if err := result.Write(dir); err != nil {
		return nil, fmt.Errorf("API %q: %w", api.Name, err)
	}
	p.log.Info("wrote schema artifacts", "api", api.Name, "dir", dir, "operations", len(result.Operations))

	run := &runcache.Run{
		API:            api.Name,
		WSDLURL:        api.WSDL,
		SchemaHash:     runcache.HashSchema(result.Schema),
		OperationCount: len(result.Operations),
	}
	if p.repo != nil {
		if prev, err := p.repo.Latest(api.Name); err == nil && prev != nil && prev.SchemaHash == run.SchemaHash {
			p.log.Debug("schema unchanged since last run", "api", api.Name)
		}
		if err := p.repo.Record(run); err != nil {
			return nil, fmt.Errorf("API %q: %w", api.Name, err)
		}
	}
	return run, nil
}

// deploy initializes the API's workspace and publishes the endpoint.
func (p *pipeline) deploy(ctx context.Context, api config.API, run *runcache.Run) error {
	ws := stepzen.NewWorkspace(p.workspaceDir(api), p.runner, p.log)
	if err := ws.Init(ctx); err != nil {
		return fmt.Errorf("API %q: %w", api.Name, err)
	}
	if err := ws.Deploy(ctx, api.Name); err != nil {
		return fmt.Errorf("API %q: %w", api.Name, err)
	}
	if p.repo != nil && run != nil {
		if err := p.repo.MarkDeployed(run.ID); err != nil {
			return fmt.Errorf("API %q: %w", api.Name, err)
		}
	}
	return nil
}

func parseSOAPVersion(s string) (generator.SOAPVersion, error) {
	switch s {
	case "1.1":
		return generator.SOAP11, nil
	case "1.2", "":
		return generator.SOAP12, nil
	}
	return "", fmt.Errorf("unsupported SOAP version %q (want 1.1 or 1.2)", s)
}
