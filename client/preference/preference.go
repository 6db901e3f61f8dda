package preference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func Read() (*Data, error) {
	data := NewData()

	pathToFile, err := filePath()
	if err != nil {
		return data, fmt.Errorf("failed to get preference file path: %w", err)
	}

	if _, err := os.Stat(pathToFile); os.IsNotExist(err) {
		// no file yet: the first Write creates it
		return data, nil
	}

	jsonFile, err := os.Open(pathToFile)
	if err != nil {
		return data, fmt.Errorf("failed to open %s: %w", pathToFile, err)
	}
	defer jsonFile.Close()

	decoded := Data{}
	if err := json.NewDecoder(jsonFile).Decode(&decoded); err != nil {
		return data, fmt.Errorf("failed to decode %s: %w", pathToFile, err)
	}
	if decoded.Orgs == nil {
		decoded.Orgs = make(map[string]Org)
	}

	return &decoded, nil
}

func Write(data *Data) error {
	pathToFile, err := filePath()
	if err != nil {
		return fmt.Errorf("failed to get preference file path: %w", err)
	}
	jsonFile, err := os.Create(pathToFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", pathToFile, err)
	}
	defer jsonFile.Close()

	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", pathToFile, err)
	}

	return nil
}

func filePath() (string, error) {
	prefix, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	configDir := filepath.Join(prefix, "orgscope")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	return filepath.Join(configDir, "preference.json"), nil
}

// CreateOrUpdate records a use of org, and makes it the default when asDefault is set.
func CreateOrUpdate(orgLogin, license string, asDefault bool) error {
	if orgLogin == "" {
		return errors.New("WARNING: org login is empty")
	}

	pref, err := Read()
	if err != nil {
		return fmt.Errorf("WARNING: could not read preference file: %w", err)
	}

	orgPref := pref.Org(orgLogin)
	orgPref.LastLicense = license
	pref.SetOrg(orgPref)
	if asDefault {
		pref.DefaultOrg = orgLogin
	}

	if err := Write(pref); err != nil {
		return fmt.Errorf("WARNING: could not update preference file: %w", err)
	}

	return nil
}
