package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из .env файлов. Уже заданные переменные окружения не перетираются,
// отсутствующий файл не считается ошибкой.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat %s: %w", f, err)
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}

// ParseFlags разбирает флаги командной строки сервисов: -port и -log-level перекрывают env.
func ParseFlags() error {
	var portFlag, logLevelFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&logLevelFlag, "log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	flag.Parse()

	for env, value := range map[string]string{"PORT": portFlag, "LOG_LEVEL": logLevelFlag} {
		if value == "" {
			continue
		}
		if err := os.Setenv(env, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
