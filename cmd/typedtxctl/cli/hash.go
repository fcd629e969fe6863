package cli

import (
	"fmt"
	"os"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/txn"
	"github.com/NethermindEth/starknet-typedtx/typeddata"
	"github.com/NethermindEth/starknet-typedtx/utils"
	"github.com/spf13/cobra"
)

const accountF = "account"

func newHashCmd(logLevel *utils.LogLevel, logBackend *string) *cobra.Command {
	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute a Starknet hash from a JSON document.",
	}
	hashCmd.AddCommand(newHashTypedDataCmd(logLevel, logBackend))
	hashCmd.AddCommand(newHashTxCmd(logLevel, logBackend))
	return hashCmd
}

func newHashTypedDataCmd(logLevel *utils.LogLevel, logBackend *string) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "typed-data <file>",
		Short: "Print the message hash of a Typed Data JSON document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel, logBackend)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			td, err := typeddata.FromJSON(data)
			if err != nil {
				return fmt.Errorf("decode typed data: %w", err)
			}

			accountAddress, err := felt.FromHex(account)
			if err != nil {
				return fmt.Errorf("parse --%s: %w", accountF, err)
			}

			hash, err := td.GetMessageHash(accountAddress)
			if err != nil {
				return fmt.Errorf("compute message hash: %w", err)
			}

			log.Infow("computed typed-data message hash", "file", args[0], "account", accountAddress.Hex())
			fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&account, accountF, "", "Account address the message is hashed for (required).")
	_ = cmd.MarkFlagRequired(accountF)
	return cmd
}

func newHashTxCmd(logLevel *utils.LogLevel, logBackend *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx <file>",
		Short: "Print the transaction hash of a transaction envelope JSON document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel, logBackend)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			tx, err := txn.FromJSON(data)
			if err != nil {
				return fmt.Errorf("decode transaction: %w", err)
			}

			hash, err := tx.Hash()
			if err != nil {
				return fmt.Errorf("compute transaction hash: %w", err)
			}

			log.Infow("computed transaction hash", "file", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())
			return nil
		},
	}
	return cmd
}
