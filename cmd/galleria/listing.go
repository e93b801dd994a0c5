package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	listing = cli.Command{
		Name:  "listing",
		Usage: "manage a listing of the marketplace",
		Subcommands: []*cli.Command{
			listingNewCmd, listingSetCmd, listingInfoCmd, listingListCmd,
			listingPriceCmd, listingCancelCmd, listingReceiptsCmd,
		},
	}

	listingNewCmd = &cli.Command{
		Name:  "new",
		Usage: "create a new listing and escrow its asset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "seller",
				Usage:    "base58 identity of the seller",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "listing_id",
				Usage: "listing identifier, generated when omitted",
			},
			&cli.StringFlag{
				Name:     "asset_id",
				Usage:    "base58 id of the asset to put on sale",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "payment_asset",
				Usage:    "base58 id of the asset the sale settles in",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "price",
				Usage:    "asking price, or starting bid for auctions",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  "start_at",
				Usage: "auction start as unix seconds",
			},
			&cli.Int64Flag{
				Name:  "end_at",
				Usage: "auction end as unix seconds",
			},
			&cli.BoolFlag{
				Name:  "auction",
				Usage: "sell through an english auction instead of a fixed price",
			},
		},
		Action: listingNewAction,
	}
	listingSetCmd = &cli.Command{
		Name:      "set",
		Usage:     "set the current listing in the local state",
		ArgsUsage: "<seller> <listing_id>",
		Action:    listingSetAction,
	}
	listingInfoCmd = &cli.Command{
		Name:   "info",
		Usage:  "get info about the current listing",
		Action: listingInfoAction,
	}
	listingListCmd = &cli.Command{
		Name:  "list",
		Usage: "list the listings of the marketplace",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "open",
				Usage: "list open listings only",
			},
		},
		Action: listingListAction,
	}
	listingPriceCmd = &cli.Command{
		Name:  "price",
		Usage: "update the asking price of the current listing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "caller",
				Usage:    "base58 identity of the seller",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "new_price",
				Usage:    "the new asking price",
				Required: true,
			},
		},
		Action: listingPriceAction,
	}
	listingCancelCmd = &cli.Command{
		Name:  "cancel",
		Usage: "cancel the current listing and return its asset to the seller",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "caller",
				Usage:    "base58 identity of the seller",
				Required: true,
			},
		},
		Action: listingCancelAction,
	}
	listingReceiptsCmd = &cli.Command{
		Name:   "receipts",
		Usage:  "list the settlement receipts of the current listing",
		Action: listingReceiptsAction,
	}
)

func listingNewAction(ctx *cli.Context) error {
	resp, err := apiCall("POST", "/v1/listings", map[string]interface{}{
		"seller":        ctx.String("seller"),
		"listing_id":    ctx.String("listing_id"),
		"asset_id":      ctx.String("asset_id"),
		"payment_asset": ctx.String("payment_asset"),
		"asking_price":  ctx.Uint64("price"),
		"start_at":      ctx.Int64("start_at"),
		"end_at":        ctx.Int64("end_at"),
		"is_auction":    ctx.Bool("auction"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func listingSetAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return &invalidUsageError{ctx, "set"}
	}

	seller := ctx.Args().Get(0)
	listingID := ctx.Args().Get(1)
	if err := setListingIntoState(seller, listingID); err != nil {
		return err
	}

	fmt.Printf("listing %s/%s has been set\n", seller, listingID)
	return nil
}

func listingInfoAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	resp, err := apiCall(
		"GET", fmt.Sprintf("/v1/listings/%s/%s", seller, listingID), nil,
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func listingListAction(ctx *cli.Context) error {
	path := "/v1/listings"
	if ctx.Bool("open") {
		path += "?open=true"
	}

	resp, err := apiCall("GET", path, nil)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func listingPriceAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	_, err = apiCall(
		"PUT", fmt.Sprintf("/v1/listings/%s/%s/price", seller, listingID),
		map[string]interface{}{
			"caller":    ctx.String("caller"),
			"new_price": ctx.Uint64("new_price"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("price has been updated")
	return nil
}

func listingCancelAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	_, err = apiCall(
		"DELETE", fmt.Sprintf("/v1/listings/%s/%s", seller, listingID),
		map[string]interface{}{
			"caller": ctx.String("caller"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("listing has been canceled")
	return nil
}

func listingReceiptsAction(ctx *cli.Context) error {
	seller, listingID, err := getListingFromState()
	if err != nil {
		return err
	}

	resp, err := apiCall(
		"GET", fmt.Sprintf("/v1/listings/%s/%s/receipts", seller, listingID), nil,
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
