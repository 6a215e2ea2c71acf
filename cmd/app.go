// Package cmd implements the CLI application to manage a wallet of
// investments.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// Commands lists all the subcommands of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&valueCmd{},
	&summaryCmd{},
	&updateCmd{},
	&convertCmd{},
	&configCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var walletDir = flag.String("wallet-dir", wallet.DefaultStorePath(), "Path to the wallet directory (also WALLET_DIR)")

// openStore opens the application store.
func openStore() (*wallet.Store, error) {
	return wallet.OpenStore(*walletDir)
}

// loadAll opens the store and reads everything a valuation needs.
func loadAll() (store *wallet.Store, invs []*wallet.Investment, data *wallet.ExternalData, settings wallet.Settings, err error) {
	store, err = openStore()
	if err != nil {
		return nil, nil, nil, wallet.Settings{}, err
	}
	invs, err = store.Investments()
	if err != nil {
		return nil, nil, nil, wallet.Settings{}, err
	}
	data, err = store.ExternalData()
	if err != nil {
		return nil, nil, nil, wallet.Settings{}, err
	}
	settings, err = store.Settings()
	if err != nil {
		return nil, nil, nil, wallet.Settings{}, err
	}
	return store, invs, data, settings, nil
}

// fail prints an error on stderr and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// usageErr prints an error on stderr and returns the usage-error exit status.
func usageErr(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
