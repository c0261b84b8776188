package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ErrEmptyBytecode = errors.New("artifact has no bytecode")

// Artifact is a compiled contract as written by Hardhat under
// artifacts/contracts/<File>.sol/<Name>.json.
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
}

type hardhatArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// LoadArtifact reads a Hardhat artifact from disk.
func LoadArtifact(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// ParseArtifact decodes Hardhat artifact JSON.
func ParseArtifact(data []byte) (Artifact, error) {
	var raw hardhatArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}

	bc := strings.TrimSpace(raw.Bytecode)
	if bc == "" || bc == "0x" {
		return Artifact{}, fmt.Errorf("%s: %w", raw.ContractName, ErrEmptyBytecode)
	}

	abiJSON := raw.ABI
	if len(abiJSON) == 0 {
		abiJSON = []byte("[]")
	}
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return Artifact{}, fmt.Errorf("parse abi for %s: %w", raw.ContractName, err)
	}

	return Artifact{
		ContractName: raw.ContractName,
		ABI:          parsed,
		Bytecode:     common.FromHex(bc),
	}, nil
}
