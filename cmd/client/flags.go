package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/abezemskiy/portfolio/internal/client/config"

	"github.com/joho/godotenv"
)

var (
	netAddr    string // адрес сервера портфолио
	logLevel   string // уровень логирования
	logFile    string // файл для записи логов клиента
	configFile string // путь к файлу конфигурации
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверка корректности установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return err
	}
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address of portfolio server")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&logFile, "f", "", "file to write client logs")
	flag.StringVar(&configFile, "c", "", "name of configuration file")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if logFile == "" {
		logFile = configs.LogFile
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	// подгружаю переменные из файла .env, его отсутствие не является ошибкой
	_ = godotenv.Load()

	if netAddr == "" {
		netAddr = os.Getenv("PORTFOLIO_CLIENT_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("PORTFOLIO_CLIENT_LOG_LEVEL")
	}
	if logFile == "" {
		logFile = os.Getenv("PORTFOLIO_CLIENT_LOG_FILE")
	}
}

// checkVariables - функция для проверки корректности утсановки глобальных переменных.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address of portfolio server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if logFile == "" {
		// по умолчанию логи пишутся в файл рядом с бинарником
		logFile = "./portfolio-client.log"
	}
	return nil
}
