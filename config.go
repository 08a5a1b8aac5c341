// This file contains user configuration encoding.

package main

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
)

// Config describes available configuration options.
type Config struct {
	DarkColors bool   // whether to use a dark color theme
	Version    string // config's game version
}

// ConfigSave returns encoded config data for saving.
func (c *Config) ConfigSave() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(c)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// DecodeConfigSave retrieves a *Config object from config data encoded with
// ConfigSave.
func DecodeConfigSave(data []byte) (*Config, error) {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	c := &Config{}
	err := dec.Decode(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// InitConfig loads saved config, if any, and initializes GameConfig.
func InitConfig() error {
	GameConfig.DarkColors = true // default to dark theme
	GameConfig.Version = Version
	_, err := LoadConfig()
	if err != nil {
		err = fmt.Errorf("error loading config: %v", err)
		saverr := SaveConfig()
		if saverr != nil {
			log.Printf("error resetting badly loaded config: %v", saverr)
		}
		return err
	}
	return nil
}
