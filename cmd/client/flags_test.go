package main

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetVariables() {
	netAddr = ""
	logLevel = ""
	logFile = ""
	configFile = ""
}

func TestParseFlags(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	os.Args = []string{"cmd", "-a", "http://localhost:5678", "-l", "debug", "-f", "/tmp/client.log", "-c", "/config/file"}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	parseFlags()

	assert.Equal(t, "http://localhost:5678", netAddr)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "/tmp/client.log", logFile)
	assert.Equal(t, "/config/file", configFile)
}

func TestParseEnvironment(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаем переменные окружения
	os.Setenv("PORTFOLIO_CLIENT_ADDRESS", "http://env.addr")
	os.Setenv("PORTFOLIO_CLIENT_LOG_LEVEL", "test_info")
	os.Setenv("PORTFOLIO_CLIENT_LOG_FILE", "env.log")

	defer func() {
		os.Unsetenv("PORTFOLIO_CLIENT_ADDRESS")
		os.Unsetenv("PORTFOLIO_CLIENT_LOG_LEVEL")
		os.Unsetenv("PORTFOLIO_CLIENT_LOG_FILE")
	}()

	parseEnvironment()

	assert.Equal(t, "http://env.addr", netAddr)
	assert.Equal(t, "test_info", logLevel)
	assert.Equal(t, "env.log", logFile)
}

func TestParseConfigFile(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	testFlagNetAddr := "http://localhost:8082"
	testFlagLogLevel := "info"
	testFlagLogFile := "./file.log"

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

	// Утсанавливаю путь к файлу конфигурации
	configFile = nameFile
	parseConfigFile()

	assert.Equal(t, testFlagNetAddr, netAddr)
	assert.Equal(t, testFlagLogLevel, logLevel)
	assert.Equal(t, testFlagLogFile, logFile)

	err := os.Remove(nameFile)
	require.NoError(t, err)
}

func TestParseFlagsPriority(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаю переменные окружения
	os.Setenv("PORTFOLIO_CLIENT_ADDRESS", "env_url")
	os.Setenv("PORTFOLIO_CLIENT_LOG_LEVEL", "env_info")
	os.Setenv("PORTFOLIO_CLIENT_LOG_FILE", "env.log")

	defer func() {
		os.Unsetenv("PORTFOLIO_CLIENT_ADDRESS")
		os.Unsetenv("PORTFOLIO_CLIENT_LOG_LEVEL")
		os.Unsetenv("PORTFOLIO_CLIENT_LOG_FILE")
	}()

	// Создаю временный конфигурационный файл
	testConfigFile := "./test_priority_config.json"
	configContent := `{"address": "file_url", "log_level": "file_debug", "log_file": "file.log"}`
	err := os.WriteFile(testConfigFile, []byte(configContent), 0644)
	require.NoError(t, err)
	defer os.Remove(testConfigFile)

	// Устанавливаю значения флагов
	os.Args = []string{"cmd", "-a", "flag_url", "-l", "flag_info", "-f", "flag.log", "-c", testConfigFile}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Флаги имеют приоритет
	assert.Equal(t, "flag_url", netAddr)
	assert.Equal(t, "flag_info", logLevel)
	assert.Equal(t, "flag.log", logFile)
	assert.Equal(t, testConfigFile, configFile)
}

func TestCheckVariables(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	err := checkVariables()
	require.Error(t, err)

	netAddr = "some addr"
	err = checkVariables()
	require.Error(t, err)

	logLevel = "some level"
	err = checkVariables()
	require.NoError(t, err)

	// файл логов получает значение по умолчанию
	assert.Equal(t, "./portfolio-client.log", logFile)
}
