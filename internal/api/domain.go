package api

import (
	"github.com/JaimeStill/sedam/internal/contents"
	"github.com/JaimeStill/sedam/internal/exports"
	"github.com/JaimeStill/sedam/internal/media"
	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Policies policies.System
	Contents contents.System
	Media    media.System
	Exports  exports.System
	Prompts  prompts.System
}

// NewDomain wires the systems in dependency order: prompts feed the
// workflow, contents build on policies, media on contents, and exports
// read from all three.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	promptsSystem := prompts.New(db, runtime.Logger, runtime.Pagination)
	wf := runtime.Workflow(promptsSystem)

	policiesSystem := policies.New(db, runtime.Storage, runtime.Logger, runtime.Pagination)
	contentsSystem := contents.New(db, policiesSystem, wf, runtime.Logger, runtime.Pagination)
	mediaSystem := media.New(db, runtime.Storage, contentsSystem, wf, runtime.Logger, runtime.Pagination)

	exportsSystem := exports.New(
		policiesSystem,
		contentsSystem,
		mediaSystem,
		runtime.Storage,
		runtime.Renderer,
		runtime.Logger,
	)

	return &Domain{
		Policies: policiesSystem,
		Contents: contentsSystem,
		Media:    mediaSystem,
		Exports:  exportsSystem,
		Prompts:  promptsSystem,
	}
}
