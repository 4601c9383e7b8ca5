package main

import (
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"gopkg.in/yaml.v2"
	"os"
)

func loadManifest(path string) (app.Manifest, error) {
	var m app.Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read the manifest: %w", err)
	}
	err = yaml.Unmarshal(data, &m)
	if err != nil {
		return m, fmt.Errorf("parse the manifest: %w", err)
	}
	return m, nil
}

func runSubmit(c client, cmd submitCmd) error {
	m, err := loadManifest(cmd.File)
	if err != nil {
		return err
	}
	list, err := c.submitManifest(m)
	if err != nil {
		return err
	}
	fmt.Printf("The manifest is submitted; %d experiments are queued\n", len(list))
	renderTable(list)
	return nil
}
