//go:build !js

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the game's data directory location.
func DataDir() (string, error) {
	var xdg string
	if runtime.GOOS == "windows" {
		xdg = os.Getenv("LOCALAPPDATA")
	} else {
		xdg = os.Getenv("XDG_DATA_HOME")
	}
	if xdg == "" {
		xdg = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	dataDir := filepath.Join(xdg, "keydelve")
	_, err := os.Stat(dataDir)
	if err != nil {
		err = os.MkdirAll(dataDir, 0755)
		if err != nil {
			return "", fmt.Errorf("building data directory: %v", err)
		}
	}
	return dataDir, nil
}

// SaveFile writes data to the given file in the game's data directory, going
// through a temporary file and a rename.
func SaveFile(filename string, data []byte) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	tempFile := filepath.Join(dataDir, "temp-"+filename)
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filepath.Join(dataDir, filename))
}

// RemoveDataFile removes the given file in the game's data directory.
func RemoveDataFile(filename string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(dataDir, filename))
}

// SaveConfig saves the game's config to the config file.
func SaveConfig() error {
	data, err := GameConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SaveFile("config", data)
}

// LoadConfig loads the game's config from the config file. It reports whether
// a compatible config was actually loaded.
func LoadConfig() (bool, error) {
	dataDir, err := DataDir()
	if err != nil {
		return false, err
	}
	configFile := filepath.Join(dataDir, "config")
	_, err = os.Stat(configFile)
	if err != nil {
		// No config file: defaults are used.
		return false, nil
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		return false, err
	}
	c, err := DecodeConfigSave(data)
	if err != nil {
		return false, err
	}
	if c.Version != GameConfig.Version {
		log.Print("ignoring incompatible old config")
		if err := RemoveDataFile("config"); err != nil {
			log.Printf("removing old config: %v", err)
		}
		return false, nil
	}
	GameConfig = *c
	return true, nil
}
