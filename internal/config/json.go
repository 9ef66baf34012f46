package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// environmentFile is the on-disk shape of a config file. Production is a
// pointer so an absent key can be told apart from false.
type environmentFile struct {
	Production   *bool  `json:"production"`
	APIServerURL string `json:"apiServerUrl"`
	Auth0        Auth0  `json:"auth0"`
}

func parseJSON(jsonFilePath string) (*source, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var file environmentFile
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &source{
		Production: file.Production,
		Environment: EnvironmentConfig{
			APIServerURL: file.APIServerURL,
			Auth0:        file.Auth0,
		},
	}, nil
}
