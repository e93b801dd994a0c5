package main

import (
	"github.com/urfave/cli/v2"
)

var info = cli.Command{
	Name:   "info",
	Usage:  "get info about the marketplace configuration",
	Action: infoAction,
}

func infoAction(ctx *cli.Context) error {
	resp, err := apiCall("GET", "/v1/config", nil)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
