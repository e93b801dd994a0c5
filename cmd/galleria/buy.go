package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var buy = cli.Command{
	Name:  "buy",
	Usage: "buy the current listing at its asking price",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "buyer",
			Usage:    "base58 identity of the buyer",
			Required: true,
		},
	},
	Action: buyAction,
}

func buyAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	resp, err := apiCall(
		"POST", fmt.Sprintf("/v1/listings/%s/%s/buy", seller, listingID),
		map[string]interface{}{
			"caller": ctx.String("buyer"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
