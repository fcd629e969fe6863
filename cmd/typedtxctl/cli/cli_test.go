package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/NethermindEth/starknet-typedtx/cmd/typedtxctl/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTypedDataCommand(t *testing.T) {
	doc := `{
		"types": {
			"StarkNetDomain": [
				{"name":"name","type":"felt"},
				{"name":"version","type":"felt"},
				{"name":"chainId","type":"felt"}
			],
			"Mail": [{"name":"text","type":"felt"}]
		},
		"primaryType": "Mail",
		"domain": {"name":"myDapp","version":"1","chainId":"1"},
		"message": {"text":"0x1"}
	}`
	path := filepath.Join(t.TempDir(), "typed-data.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	cmd := cli.NewCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"hash", "typed-data", path, "--account", "0x1234"})
	require.NoError(t, cmd.Execute())
	assert.NotEmpty(t, out.String())
	assert.Contains(t, out.String(), "0x")
}

func TestHashTxCommand(t *testing.T) {
	doc := `{
		"type": "INVOKE",
		"version": "0x1",
		"sender_address": "0x1",
		"calldata": ["0x2"],
		"max_fee": "0x100",
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0"
	}`
	path := filepath.Join(t.TempDir(), "tx.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	cmd := cli.NewCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"hash", "tx", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "0x")
}

func TestHashTxCommandRejectsMissingFile(t *testing.T) {
	cmd := cli.NewCmd()
	cmd.SetArgs([]string{"hash", "tx", "/nonexistent/path.json"})
	assert.Error(t, cmd.Execute())
}

func TestConfigFileSetsLogLevel(t *testing.T) {
	doc := []byte(`{
		"type": "INVOKE",
		"version": "0x1",
		"sender_address": "0x1",
		"calldata": ["0x2"],
		"max_fee": "0x100",
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0"
	}`)
	txPath := filepath.Join(t.TempDir(), "tx.json")
	require.NoError(t, os.WriteFile(txPath, doc, 0o600))

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log-level: error\n"), 0o600))

	var out bytes.Buffer
	cmd := cli.NewCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "hash", "tx", txPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "0x")
}

func TestConfigFileMissingFails(t *testing.T) {
	cmd := cli.NewCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/config.yaml", "hash", "tx", "/nonexistent/tx.json"})
	assert.Error(t, cmd.Execute())
}

func TestHashTxCommandZapLogBackend(t *testing.T) {
	doc := `{
		"type": "INVOKE",
		"version": "0x1",
		"sender_address": "0x1",
		"calldata": ["0x2"],
		"max_fee": "0x100",
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0"
	}`
	path := filepath.Join(t.TempDir(), "tx.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	cmd := cli.NewCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-backend", "zap", "hash", "tx", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "0x")
}

func TestHashTxCommandUnknownLogBackendFails(t *testing.T) {
	cmd := cli.NewCmd()
	cmd.SetArgs([]string{"--log-backend", "bogus", "hash", "tx", "/nonexistent/tx.json"})
	assert.Error(t, cmd.Execute())
}
