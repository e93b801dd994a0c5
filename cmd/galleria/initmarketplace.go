package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var initmarketplace = cli.Command{
	Name:  "init",
	Usage: "initialize the marketplace with its owner and fee cut",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "owner",
			Usage:    "base58 identity collecting the marketplace fee",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "owner_cut_bps",
			Usage:    "marketplace fee in basis points, must be lower than 10000",
			Required: true,
		},
	},
	Action: initMarketplaceAction,
}

func initMarketplaceAction(ctx *cli.Context) error {
	_, err := apiCall("POST", "/v1/config", map[string]interface{}{
		"owner":         ctx.String("owner"),
		"owner_cut_bps": ctx.Uint64("owner_cut_bps"),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("marketplace is initialized")
	return nil
}
