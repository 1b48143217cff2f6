package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

const (
	DeploymentsFile = "deployments.json"

	maxSuggestions = 3
)

// FileRepository stores the deployments in a json file under the data dir.
// Name lookups are scoped to one namespace and chain.
type FileRepository struct {
	dataDir     string
	namespace   string
	chainID     uint64
	mu          sync.RWMutex
	deployments map[string]*models.Deployment
	byAddress   map[string]map[string]string // scope -> lowercase address -> ID
}

// NewFileRepository creates a repository scoped to the runtime namespace and network
func NewFileRepository(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return OpenFileRepository(cfg.DataDir, cfg.Namespace, cfg.ChainID())
}

// OpenFileRepository loads or creates the registry in dataDir
func OpenFileRepository(dataDir, namespace string, chainID uint64) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dataDir, err)
	}

	m := &FileRepository{
		dataDir:     dataDir,
		namespace:   namespace,
		chainID:     chainID,
		deployments: make(map[string]*models.Deployment),
	}

	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return m, nil
}

func (m *FileRepository) path() string {
	return filepath.Join(m.dataDir, DeploymentsFile)
}

// load reads the registry file
func (m *FileRepository) load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		if err := json.Unmarshal(data, &m.deployments); err != nil {
			return fmt.Errorf("failed to parse %s: %w", DeploymentsFile, err)
		}
	}

	m.rebuildLookups()
	return nil
}

// save writes the registry file; callers hold the write lock
func (m *FileRepository) save() error {
	data, err := json.MarshalIndent(m.deployments, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := m.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, m.path())
}

func (m *FileRepository) rebuildLookups() {
	m.byAddress = make(map[string]map[string]string)
	for id, dep := range m.deployments {
		scope := scopeKey(dep.Namespace, dep.ChainID)
		if m.byAddress[scope] == nil {
			m.byAddress[scope] = make(map[string]string)
		}
		m.byAddress[scope][strings.ToLower(dep.Address)] = id
	}
}

func scopeKey(namespace string, chainID uint64) string {
	return fmt.Sprintf("%s/%d", namespace, chainID)
}

// ResolveDeployedAddress returns the integer address recorded for name
func (m *FileRepository) ResolveDeployedAddress(ctx context.Context, name string) (*big.Int, error) {
	dep, err := m.GetDeployment(ctx, name)
	if err != nil {
		return nil, err
	}
	return domain.AddressToInt(dep.Address)
}

// GetDeployment retrieves a deployment by name in the active namespace and
// chain. A full "namespace/chainId/Name" ID is looked up as is.
func (m *FileRepository) GetDeployment(ctx context.Context, name string) (*models.Deployment, error) {
	if strings.Contains(name, "/") {
		return m.getByID(name)
	}
	if m.chainID == 0 {
		return nil, domain.ErrNetworkRequired
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, exists := m.deployments[models.DeploymentID(m.namespace, m.chainID, name)]
	if !exists {
		return nil, &domain.DeploymentNotFoundError{
			Name:        name,
			Namespace:   m.namespace,
			ChainID:     m.chainID,
			Suggestions: m.suggest(name),
		}
	}

	// Clone to avoid mutations
	clone := *dep
	clone.Tags = append([]string(nil), dep.Tags...)
	return &clone, nil
}

func (m *FileRepository) getByID(id string) (*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, exists := m.deployments[id]
	if !exists {
		return nil, fmt.Errorf("deployment %s: %w", id, domain.ErrNotFound)
	}
	clone := *dep
	clone.Tags = append([]string(nil), dep.Tags...)
	return &clone, nil
}

// GetDeploymentByAddress retrieves the deployment recorded at address in the
// active namespace and chain
func (m *FileRepository) GetDeploymentByAddress(ctx context.Context, address string) (*models.Deployment, error) {
	if m.chainID == 0 {
		return nil, domain.ErrNetworkRequired
	}

	m.mu.RLock()
	id, ok := m.byAddress[scopeKey(m.namespace, m.chainID)][strings.ToLower(address)]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no deployment at %s in %s: %w", address, scopeKey(m.namespace, m.chainID), domain.ErrNotFound)
	}
	return m.getByID(id)
}

// suggest returns the closest recorded names in scope; callers hold the lock
func (m *FileRepository) suggest(name string) []string {
	names := lo.FilterMap(lo.Values(m.deployments), func(d *models.Deployment, _ int) (string, bool) {
		return d.ContractName, d.Namespace == m.namespace && d.ChainID == m.chainID
	})
	sort.Strings(names)

	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range fuzzy.Find(name, names) {
		if len(suggestions) == maxSuggestions {
			return suggestions
		}
		suggestions = append(suggestions, names[match.Index])
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	// The query may have extra or misplaced letters; try the other direction
	for _, candidate := range names {
		if len(suggestions) == maxSuggestions {
			break
		}
		if len(fuzzy.Find(candidate, []string{name})) > 0 {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

// ListDeployments retrieves deployments matching the filter
func (m *FileRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*models.Deployment
	for _, dep := range m.deployments {
		if filter.Namespace != "" && dep.Namespace != filter.Namespace {
			continue
		}
		if filter.ChainID != 0 && dep.ChainID != filter.ChainID {
			continue
		}
		if filter.ContractName != "" && dep.ContractName != filter.ContractName {
			continue
		}
		if filter.Tag != "" && !dep.HasTag(filter.Tag) {
			continue
		}

		clone := *dep
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SaveDeployment saves a deployment, replacing any record with the same ID
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	if deployment.ContractName == "" {
		return fmt.Errorf("%w: contract name is required", domain.ErrInvalidDeployment)
	}
	if !strings.HasPrefix(deployment.Address, "0x") || len(deployment.Address) != 42 {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, deployment.Address)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if deployment.Namespace == "" {
		deployment.Namespace = m.namespace
	}
	if deployment.ChainID == 0 {
		deployment.ChainID = m.chainID
	}
	if deployment.ChainID == 0 {
		return domain.ErrNetworkRequired
	}
	if deployment.ID == "" {
		deployment.ID = models.DeploymentID(deployment.Namespace, deployment.ChainID, deployment.ContractName)
	}

	now := time.Now()
	if existing, ok := m.deployments[deployment.ID]; ok && deployment.CreatedAt.IsZero() {
		deployment.CreatedAt = existing.CreatedAt
	}
	if deployment.CreatedAt.IsZero() {
		deployment.CreatedAt = now
	}
	deployment.UpdatedAt = now
	if deployment.Tags == nil {
		deployment.Tags = []string{}
	}

	clone := *deployment
	m.deployments[deployment.ID] = &clone
	m.rebuildLookups()

	return m.save()
}

// RemoveDeployment deletes the record for name in the active scope
func (m *FileRepository) RemoveDeployment(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := models.DeploymentID(m.namespace, m.chainID, name)
	if _, ok := m.deployments[id]; !ok {
		return &domain.DeploymentNotFoundError{Name: name, Namespace: m.namespace, ChainID: m.chainID}
	}
	delete(m.deployments, id)
	m.rebuildLookups()

	return m.save()
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)
