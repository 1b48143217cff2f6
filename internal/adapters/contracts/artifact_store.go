package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
)

// ArtifactStore reads Foundry build output. It never compiles; run
// `forge build` first.
type ArtifactStore struct {
	outDir string
	mu     sync.Mutex
	cache  map[string]*models.Artifact
}

// NewArtifactStore creates a store over the active profile's out directory
func NewArtifactStore(cfg *config.RuntimeConfig) *ArtifactStore {
	outDir := cfg.ArtifactsDir()
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cfg.ProjectRoot, outDir)
	}
	return NewArtifactStoreAt(outDir)
}

// NewArtifactStoreAt creates a store over outDir
func NewArtifactStoreAt(outDir string) *ArtifactStore {
	return &ArtifactStore{
		outDir: outDir,
		cache:  make(map[string]*models.Artifact),
	}
}

// GetArtifact loads the artifact for "Name" or "File.sol:Name"
func (s *ArtifactStore) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if artifact, ok := s.cache[name]; ok {
		return artifact, nil
	}

	path, contractName, err := s.locate(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	artifact := &models.Artifact{}
	if err := json.Unmarshal(data, artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	artifact.Name = contractName
	artifact.Path = path

	s.cache[name] = artifact
	return artifact, nil
}

// locate maps a contract reference to its artifact file
func (s *ArtifactStore) locate(name string) (string, string, error) {
	if file, contract, ok := strings.Cut(name, ":"); ok {
		path := filepath.Join(s.outDir, filepath.Base(file), contract+".json")
		if _, err := os.Stat(path); err != nil {
			return "", "", fmt.Errorf("%w: %s (looked in %s)", domain.ErrArtifactNotFound, name, path)
		}
		return path, contract, nil
	}

	// A bare name must be unique across all sources, even when the
	// conventional out/Name.sol/Name.json exists.
	matches, err := filepath.Glob(filepath.Join(s.outDir, "*", name+".json"))
	if err != nil {
		return "", "", err
	}
	switch len(matches) {
	case 0:
		return "", "", fmt.Errorf("%w: %s (did you run forge build? looked in %s)", domain.ErrArtifactNotFound, name, s.outDir)
	case 1:
		return matches[0], name, nil
	default:
		refs := make([]string, 0, len(matches))
		for _, m := range matches {
			refs = append(refs, filepath.Base(filepath.Dir(m))+":"+name)
		}
		sort.Strings(refs)
		return "", "", &domain.AmbiguousArtifactError{Name: name, Matches: refs}
	}
}

var _ usecase.ArtifactRepository = (*ArtifactStore)(nil)
