package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/urfave/cli/v2"
)

var (
	galleriaDataDir = appDataDir("galleria-operator")
	statePath       = path.Join(galleriaDataDir, "state.json")

	httpClient = &http.Client{Timeout: 15 * time.Second}
)

func appDataDir(appName string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return path.Join(home, "."+appName)
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(galleriaDataDir); os.IsNotExist(err) {
		os.Mkdir(galleriaDataDir, os.ModeDir|0755)
	}

	file, err := os.OpenFile(statePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	currentData, err := getState()
	if err != nil {
		return err
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(statePath, jsonString, 0755); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

func getBaseURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	addr, ok := state["daemon_addr"]
	if !ok {
		return "", errors.New("set daemon_addr with `config set daemon_addr`")
	}
	return "http://" + addr, nil
}

// apiCall sends a JSON request to the daemon and returns the raw response
// body. Responses with a 4xx or 5xx status are turned into errors carrying
// the daemon's error message.
func apiCall(method, apiPath string, body interface{}) ([]byte, error) {
	baseURL, err := getBaseURL()
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, baseURL+apiPath, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to reach the daemon: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		errPayload := map[string]string{}
		if err := json.Unmarshal(respBody, &errPayload); err == nil {
			if msg, ok := errPayload["error"]; ok {
				return nil, errors.New(msg)
			}
		}
		return nil, fmt.Errorf("daemon returned status %d", resp.StatusCode)
	}

	return respBody, nil
}

func printRespJSON(resp []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, resp, "", "\t"); err != nil {
		fmt.Println(string(resp))
		return
	}
	fmt.Println(out.String())
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[galleria] %v\n", err)
	}
	os.Exit(1)
}

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "galleria operator CLI"
	app.Usage = "Command line interface for galleriad daemon operators"
	app.Commands = append(
		app.Commands,
		&config,
		&initmarketplace,
		&info,
		&listing,
		&bid,
		&buy,
		&settle,
		&receipts,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
