package main

import (
	"fmt"
	"os"

	"github.com/NethermindEth/starknet-typedtx/cmd/typedtxctl/cli"
)

func main() {
	if err := cli.NewCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
