// ABOUTME: Standard filesystem paths for tabline configuration
// ABOUTME: Resolves ~/.tabline/ for global and .tabline/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".tabline"
	projectDirName = ".tabline"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.tabline/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// Files returns the config files Load consults, global first.
func Files(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}
