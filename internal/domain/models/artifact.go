package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	Name     string           `json:"-"`
	Path     string           `json:"-"`
	ABI      json.RawMessage  `json:"abi"`
	Bytecode BytecodeObject   `json:"bytecode"`
	Metadata ArtifactMetadata `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
}

// ParseABI decodes the artifact's ABI
func (a *Artifact) ParseABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(string(a.ABI)))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI for %s: %w", a.Name, err)
	}
	return parsed, nil
}

// CreationCode returns the decoded creation bytecode. Abstract contracts,
// interfaces and artifacts with unlinked libraries can't be deployed.
func (a *Artifact) CreationCode() ([]byte, error) {
	if len(a.Bytecode.LinkReferences) > 0 {
		return nil, fmt.Errorf("artifact %s has unlinked library references", a.Name)
	}
	object := a.Bytecode.Object
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("artifact %s has no creation bytecode (abstract contract or interface?)", a.Name)
	}
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}
	code, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("artifact %s has malformed bytecode: %w", a.Name, err)
	}
	return code, nil
}

// Info summarises the artifact for a deployment record
func (a *Artifact) Info() ArtifactInfo {
	info := ArtifactInfo{
		Name:            a.Name,
		Path:            a.Path,
		CompilerVersion: a.Metadata.Compiler.Version,
	}
	if code, err := a.CreationCode(); err == nil {
		info.BytecodeHash = crypto.Keccak256Hash(code).Hex()
	}
	return info
}
