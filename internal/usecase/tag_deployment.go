package usecase

import (
	"context"
	"fmt"

	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/samber/lo"
)

// Tag operations
const (
	TagShow   = "show"
	TagAdd    = "add"
	TagRemove = "remove"
)

// TagDeploymentParams contains parameters for tagging deployments
type TagDeploymentParams struct {
	Name      string // Registry name in the active namespace and chain
	Tag       string
	Operation string // TagShow, TagAdd or TagRemove
}

// TagDeploymentResult contains the result of a tag operation
type TagDeploymentResult struct {
	Deployment  *models.Deployment
	Operation   string
	Tag         string
	CurrentTags []string
}

// TagDeployment handles tagging of deployments
type TagDeployment struct {
	repo     DeploymentRepository
	progress ProgressSink
}

// NewTagDeployment creates a new tag deployment use case
func NewTagDeployment(repo DeploymentRepository, progress ProgressSink) *TagDeployment {
	if progress == nil {
		progress = NopProgress{}
	}
	return &TagDeployment{
		repo:     repo,
		progress: progress,
	}
}

// Run handles tag operations on deployments
func (uc *TagDeployment) Run(ctx context.Context, params TagDeploymentParams) (*TagDeploymentResult, error) {
	deployment, err := uc.repo.GetDeployment(ctx, params.Name)
	if err != nil {
		return nil, err
	}

	switch params.Operation {
	case TagShow, "":
		return &TagDeploymentResult{
			Deployment:  deployment,
			Operation:   TagShow,
			CurrentTags: deployment.Tags,
		}, nil
	case TagAdd:
		if deployment.HasTag(params.Tag) {
			return nil, fmt.Errorf("tag '%s' already exists", params.Tag)
		}
		deployment.Tags = append(deployment.Tags, params.Tag)
	case TagRemove:
		if !deployment.HasTag(params.Tag) {
			return nil, fmt.Errorf("tag '%s' does not exist", params.Tag)
		}
		deployment.Tags = lo.Without(deployment.Tags, params.Tag)
	default:
		return nil, fmt.Errorf("invalid operation: %s", params.Operation)
	}

	if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
		return nil, fmt.Errorf("failed to save deployment: %w", err)
	}

	verb := "Added"
	if params.Operation == TagRemove {
		verb = "Removed"
	}
	uc.progress.Info(fmt.Sprintf("%s tag '%s' on deployment %s", verb, params.Tag, deployment.ID))

	return &TagDeploymentResult{
		Deployment:  deployment,
		Operation:   params.Operation,
		Tag:         params.Tag,
		CurrentTags: deployment.Tags,
	}, nil
}
