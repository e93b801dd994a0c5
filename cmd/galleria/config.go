package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var daemonAddrFlag = cli.StringFlag{
	Name:  "daemon_addr",
	Usage: "galleriad daemon address host:port",
	Value: "localhost:9945",
}

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the galleria CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&daemonAddrFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	for key, value := range state {
		fmt.Println(key + ": " + value)
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"daemon_addr": c.String("daemon_addr"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}

func getListingFromState() (string, string, error) {
	state, err := getState()
	if err != nil {
		return "", "", err
	}
	seller, ok := state["seller"]
	if !ok {
		return "", "", errors.New("set seller with `config set seller`")
	}
	listingID, ok := state["listing_id"]
	if !ok {
		return "", "", errors.New("set listing id with `config set listing_id`")
	}

	return seller, listingID, nil
}

func setListingIntoState(seller, listingID string) error {
	return setState(map[string]string{
		"seller":     seller,
		"listing_id": listingID,
	})
}
