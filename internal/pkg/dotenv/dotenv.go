package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env files (".env" when none given) without overriding variables
// already set in the environment, then applies command line overrides:
//
//	-port        sets PORT
//	-pprof-port  sets PPROF_PORT
func Load(paths ...string) error {
	return load(os.Args[1:], paths...)
}

func load(args []string, paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}

	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	port := flags.String("port", "", "HTTP port, overrides PORT")
	pprofPort := flags.String("pprof-port", "", "pprof port, overrides PPROF_PORT")

	err = flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":       *port,
		"PPROF_PORT": *pprofPort,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		err := os.Setenv(key, value)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}
