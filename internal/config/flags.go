package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-session-secret session cookie signing key
//	-environment deployment environment ("development" or "production")
//	-mongo-uri document store connection string
//	-mongo-database document store database name
//	-mongo-collection article collection name
//	-mongo-connect-timeout connection timeout (e.g., "5s")
//	-verbose-delete respond to DELETE with a descriptive 200 body instead of 204
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress string
	var jsonConfigPath string
	var sessionSecret string
	var environment string
	var mongoURI string
	var mongoDatabase string
	var mongoCollection string
	var mongoConnectTimeout time.Duration
	var verboseDelete bool

	fs := flag.NewFlagSet("webclass", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing key")
	fs.StringVar(&environment, "environment", "", "Deployment environment")
	fs.StringVar(&mongoURI, "mongo-uri", "", "Document store connection string")
	fs.StringVar(&mongoDatabase, "mongo-database", "", "Document store database name")
	fs.StringVar(&mongoCollection, "mongo-collection", "", "Article collection name")
	fs.DurationVar(&mongoConnectTimeout, "mongo-connect-timeout", 0, "Document store connect timeout (e.g., 5s)")
	fs.BoolVar(&verboseDelete, "verbose-delete", false, "Respond to DELETE with 200 + text instead of 204")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			Environment:   environment,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:            mongoURI,
				Database:       mongoDatabase,
				Collection:     mongoCollection,
				ConnectTimeout: mongoConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:   serverAddress,
			VerboseDelete: verboseDelete,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
