//go:build js

package main

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"syscall/js"

	"codeberg.org/anaseto/gruid"
	jsd "codeberg.org/anaseto/gruid-js"
)

var driver gruid.Driver

func initDriver() {
	dr := jsd.NewDriver(jsd.Config{
		TileManager: &glyphTileManager{},
		AppCanvasId: "gamecanvas",
		AppDivId:    "gamediv",
	})
	driver = dr
}

func clearCache() {
	dr := driver.(*jsd.Driver)
	dr.ClearCache()
}

func main() {
	initDriver()
	err := InitConfig()
	if err != nil {
		log.Printf("config: %v", err)
	}
	log.SetPrefix("keydelve ")
	gd := gruid.NewGrid(UIWidth, UIHeight)
	md := &model{gd: gd}
	app := gruid.NewApp(gruid.AppConfig{
		Driver: driver,
		Model:  md,
	})
	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// DataDir is defined here only for build purposes, it is not used for the js
// backend.
func DataDir() (string, error) {
	return "", nil
}

// GetItem retrieves a base64 encoded item from localStorage. It returns nil if
// the item does not exist in the storage. It returns an error if localStorage
// is not available, or an item existed but could not be decoded.
func GetItem(item string) ([]byte, error) {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		return nil, errors.New("localStorage not found")
	}
	save := storage.Call("getItem", item)
	if save.Type() != js.TypeString {
		// this means the item does not exist
		return nil, nil
	}
	s, err := base64.StdEncoding.DecodeString(save.String())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetItem sets an item to a given value in the localStorage. The value will be
// base64 encoded.
func SetItem(item string, value []byte) error {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		return errors.New("localStorage not found")
	}
	s := base64.StdEncoding.EncodeToString(value)
	storage.Call("setItem", item, s)
	return nil
}

// RemoveItem removes an item from localStorage.
func RemoveItem(item string) {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		log.Print("localStorage not found")
	}
	storage.Call("removeItem", item)
}

const keydelveconfig = "keydelveconfig"

// SaveConfig saves the game's config to local storage.
func SaveConfig() error {
	conf, err := GameConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SetItem(keydelveconfig, conf)
}

// LoadConfig loads game's config from local storage.
func LoadConfig() (bool, error) {
	s, err := GetItem(keydelveconfig)
	if err != nil || s == nil {
		return false, err
	}
	c, err := DecodeConfigSave(s)
	if err != nil {
		return false, err
	}
	if c.Version != GameConfig.Version {
		log.Print("ignoring incompatible old config")
		RemoveItem(keydelveconfig)
		return false, nil
	}
	GameConfig = *c
	return true, nil
}
