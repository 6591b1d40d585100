package storage

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// OutputPath derives the analysis filename from the site host when no
// explicit override is given: "www." is dropped and dots become
// underscores, so https://www.example.com yields example_com_analysis.json.
// The extension follows the output format.
func OutputPath(override, baseURL, format string) string {
	if override != "" {
		return override
	}
	host := "website"
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = strings.TrimPrefix(u.Host, "www.")
		host = strings.ReplaceAll(host, ".", "_")
	}
	ext := "json"
	if format == "yaml" {
		ext = "yaml"
	}
	return host + "_analysis." + ext
}
