package usecase

import (
	"context"
	"errors"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
)

// ResolveArtifact turns a contract reference into one that names exactly one
// artifact, asking the user when a bare name is ambiguous.
type ResolveArtifact struct {
	artifacts ArtifactRepository
	selector  ArtifactSelector
}

// NewResolveArtifact creates a new ResolveArtifact use case
func NewResolveArtifact(artifacts ArtifactRepository, selector ArtifactSelector) *ResolveArtifact {
	return &ResolveArtifact{artifacts: artifacts, selector: selector}
}

// Run returns name, or the "File.sol:Name" the user picked
func (uc *ResolveArtifact) Run(ctx context.Context, name string) (string, error) {
	_, err := uc.artifacts.GetArtifact(ctx, name)
	if err == nil {
		return name, nil
	}

	var ambiguous *domain.AmbiguousArtifactError
	if !errors.As(err, &ambiguous) {
		return "", err
	}
	return uc.selector.SelectArtifact(ctx, ambiguous.Name, ambiguous.Matches)
}
