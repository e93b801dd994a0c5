package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var settle = cli.Command{
	Name:  "settle",
	Usage: "settle the current listing's ended auction as its winner",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "caller",
			Usage:    "base58 identity of the winning bidder",
			Required: true,
		},
	},
	Action: settleAction,
}

func settleAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	resp, err := apiCall(
		"POST", fmt.Sprintf("/v1/listings/%s/%s/settle", seller, listingID),
		map[string]interface{}{
			"caller": ctx.String("caller"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
