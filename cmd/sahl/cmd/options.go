// Copyright © 2018 One Concern

package cmd

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/oneconcern/sahl/pkg/core"
	"github.com/oneconcern/sahl/pkg/dlogger"
	"github.com/oneconcern/sahl/pkg/model"
	"go.uber.org/zap"
)

// used to patch over the publishing tool during test
var newRunner = func() core.Runner {
	return core.NewExecRunner()
}

func getLogger() (*zap.Logger, error) {
	return dlogger.GetLogger(sahlFlags.root.logLevel)
}

// expandPath resolves a leading ~ in a path flag
func expandPath(pth string) (string, error) {
	return homedir.Expand(pth)
}

func newStager(logger *zap.Logger) *core.Stager {
	return core.NewStager(
		core.StageLogger(logger),
		core.StageOutput(stdout),
	)
}

func newPublisher(logger *zap.Logger) *core.Publisher {
	return core.NewPublisher(
		core.PublishRunner(newRunner()),
		core.PublishTool(sahlFlags.root.tool),
		core.PublishLogger(logger),
		core.PublishOutput(stdout),
		core.Strict(sahlFlags.publish.Strict),
	)
}

func stageDescriptor() model.StageDescriptor {
	return model.StageDescriptor{
		Owner:       sahlFlags.dataset.Owner,
		Slug:        sahlFlags.dataset.Slug,
		Title:       sahlFlags.dataset.Title,
		Description: sahlFlags.dataset.Description,
		Version:     sahlFlags.publish.Version,
	}
}
