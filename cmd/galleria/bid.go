package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var bid = cli.Command{
	Name:  "bid",
	Usage: "place a bid on the current listing",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "bidder",
			Usage:    "base58 identity of the bidder",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "the bid amount, must beat the highest bid",
			Required: true,
		},
	},
	Action: bidAction,
}

func bidAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	_, err = apiCall(
		"POST", fmt.Sprintf("/v1/listings/%s/%s/bids", seller, listingID),
		map[string]interface{}{
			"bidder": ctx.String("bidder"),
			"amount": ctx.Uint64("amount"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("bid has been placed")
	return nil
}
