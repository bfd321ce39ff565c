package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/FrancisHerurd/gtaverso/cmd"
)

// loadSiteParams reads the optional site.yaml params map that layouts
// can reach as .Site.Params. A missing file is fine.
func loadSiteParams(filename string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	var params map[string]interface{}
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %w", filename, err)
	}
	return params, nil
}

func main() {
	params, err := loadSiteParams("site.yaml")
	if err != nil {
		log.Fatalf("Error loading site params: %v", err)
	}
	cmd.Execute(params)
}
