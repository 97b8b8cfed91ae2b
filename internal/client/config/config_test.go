package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFile(t *testing.T) {
	testFlagNetAddr := "http://localhost:5678"
	testFlagLogLevel := "test info"
	testFlagLogFile := "./client.log"

	createFile := func(name string) {
		data := fmt.Sprintf("{\"address\": \"%s\",\"log_level\": \"%s\",\"log_file\": \"%s\"}",
			testFlagNetAddr, testFlagLogLevel, testFlagLogFile)
		f, err := os.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(data))
		require.NoError(t, err)
	}
	nameFile := "./test_config.json"
	createFile(nameFile)

	configs, err := ParseConfigFile(nameFile)
	require.NoError(t, err)

	assert.Equal(t, testFlagNetAddr, configs.Address)
	assert.Equal(t, testFlagLogLevel, configs.LogLevel)
	assert.Equal(t, testFlagLogFile, configs.LogFile)

	err = os.Remove(nameFile)
	require.NoError(t, err)
}

func TestParseConfigFileNotExist(t *testing.T) {
	_, err := ParseConfigFile("./not-exist-config.json")
	require.Error(t, err)
}
