package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested deployment doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering a name that is already recorded
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidDeployment is returned when deployment data is invalid
	ErrInvalidDeployment = errors.New("invalid deployment")

	// ErrInvalidAddress is returned when an address is malformed or out of range
	ErrInvalidAddress = errors.New("invalid address")

	// ErrArtifactNotFound is returned when no compiled artifact matches a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidArgs is returned when constructor arguments don't match the ABI
	ErrInvalidArgs = errors.New("invalid constructor arguments")

	// ErrNetworkRequired is returned when an operation needs a network and none is configured
	ErrNetworkRequired = errors.New("network must be configured")

	// ErrNoSender is returned when no usable sender is configured
	ErrNoSender = errors.New("no sender configured")

	// ErrAborted is returned when the user declines a confirmation prompt
	ErrAborted = errors.New("aborted by user")
)

// DeploymentNotFoundError is returned when a name has no recorded deployment
// in the active namespace and chain.
type DeploymentNotFoundError struct {
	Name        string
	Namespace   string
	ChainID     uint64
	Suggestions []string
}

func (e *DeploymentNotFoundError) Error() string {
	msg := fmt.Sprintf("deployment %s not found in %s/%d", e.Name, e.Namespace, e.ChainID)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *DeploymentNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousArtifactError is returned when a bare contract name matches
// artifacts compiled from several source files.
type AmbiguousArtifactError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousArtifactError) Error() string {
	return fmt.Sprintf("multiple artifacts found for %s - use File.sol:Contract format to disambiguate:\n  - %s",
		e.Name, strings.Join(e.Matches, "\n  - "))
}
