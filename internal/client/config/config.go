package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации клиента.
type Configs struct {
	Address  string `json:"address"`   // аналог переменной окружения PORTFOLIO_CLIENT_ADDRESS или флага -a
	LogLevel string `json:"log_level"` // аналог переменной окружения PORTFOLIO_CLIENT_LOG_LEVEL или флага -l
	LogFile  string `json:"log_file"`  // аналог переменной окружения PORTFOLIO_CLIENT_LOG_FILE или флага -f
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open cofiguration file error: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse cofiguration file error: %w", err)
	}

	return configs, nil
}
