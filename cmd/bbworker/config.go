package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type config struct {
	WorkerURL string `json:"workerUrl"`
	APIKey    string `json:"apiKey"`
}

func getConfig() (*config, error) {
	budibaseHome, err := getBudibaseHome()
	if err != nil {
		return nil, errors.Wrap(err, "error finding budibase home")
	}
	configFile := path.Join(budibaseHome, "config")
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(
				"no configuration was found at %s; please use "+
					"`bbworker login` to continue",
				configFile,
			)
		}
		return nil, errors.Wrapf(
			err,
			"error checking for config file at %s",
			configFile,
		)
	}

	configBytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading config file at %s",
			configFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing config file at %s",
			configFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	budibaseHome, err := getBudibaseHome()
	if err != nil {
		return errors.Wrap(err, "error finding budibase home")
	}
	if _, err = os.Stat(budibaseHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of budibase home at %s",
				budibaseHome,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(budibaseHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating budibase home at %s",
				budibaseHome,
			)
		}
	}
	configFile := path.Join(budibaseHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err := ioutil.WriteFile(configFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", configFile)
	}
	return nil
}

func deleteConfig() error {
	budibaseHome, err := getBudibaseHome()
	if err != nil {
		return errors.Wrap(err, "error finding budibase home")
	}
	if err := os.Remove(path.Join(budibaseHome, "config")); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}
	return nil
}

func getBudibaseHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".budibase"), nil
}
