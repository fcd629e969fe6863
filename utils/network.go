package utils

import (
	"encoding"
	"encoding/json"
	"errors"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/spf13/pflag"
)

var ErrUnknownNetwork = errors.New("unknown network (known: mainnet, sepolia, sepolia-integration)")

// Network identifies a well-known Starknet network by name and maps it
// to the chainId felt that network uses, so callers need not spell the
// felt out by hand.
type Network int

// The following are necessary for Cobra and Viper, respectively, to
// unmarshal network CLI/config parameters properly.
var (
	_ pflag.Value              = (*Network)(nil)
	_ encoding.TextUnmarshaler = (*Network)(nil)
)

const (
	Mainnet Network = iota + 1
	Sepolia
	SepoliaIntegration
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Sepolia:
		return "sepolia"
	case SepoliaIntegration:
		return "sepolia-integration"
	default:
		// Should not happen.
		panic(ErrUnknownNetwork)
	}
}

func (n Network) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

func (n *Network) MarshalJSON() ([]byte, error) {
	return json.RawMessage(`"` + n.String() + `"`), nil
}

func (n *Network) Set(s string) error {
	switch s {
	case "MAINNET", "mainnet":
		*n = Mainnet
	case "SEPOLIA", "sepolia":
		*n = Sepolia
	case "SEPOLIA_INTEGRATION", "SEPOLIA-INTEGRATION", "sepolia-integration":
		*n = SepoliaIntegration
	default:
		return ErrUnknownNetwork
	}
	return nil
}

func (n *Network) Type() string {
	return "Network"
}

func (n *Network) UnmarshalText(text []byte) error {
	return n.Set(string(text))
}

// ChainIDString returns the short-string chain identifier this
// network's ChainID felt is encoded from.
func (n Network) ChainIDString() string {
	switch n {
	case Mainnet:
		return "SN_MAIN"
	case Sepolia:
		return "SN_SEPOLIA"
	case SepoliaIntegration:
		return "SN_INTEGRATION_SEPOLIA"
	default:
		// Should not happen.
		panic(ErrUnknownNetwork)
	}
}

// ChainID returns the felt a transaction or typed-data chainId field
// on this network is expected to carry.
func (n Network) ChainID() *felt.Felt {
	f, err := felt.FromShortString(n.ChainIDString())
	if err != nil {
		// ChainIDString() values are all well under 31 bytes.
		panic(err)
	}
	return f
}
