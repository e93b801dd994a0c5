package main

import (
	"github.com/urfave/cli/v2"
)

var receipts = cli.Command{
	Name:   "receipts",
	Usage:  "list all settlement receipts of the marketplace",
	Action: receiptsAction,
}

func receiptsAction(ctx *cli.Context) error {
	resp, err := apiCall("GET", "/v1/receipts", nil)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
