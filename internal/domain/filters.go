package domain

// DeploymentFilter defines filtering options for deployments.
// Zero values match everything.
type DeploymentFilter struct {
	Namespace    string
	ChainID      uint64
	ContractName string
	Tag          string
}
