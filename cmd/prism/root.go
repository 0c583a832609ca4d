package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/prism/config"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/protocol"
	"github.com/kbukum/prism/version"
)

// app holds the global flags and the state built from them.
type app struct {
	configFile string
	envFile    string
	dataDir    string
	logLevel   string

	cfg     *config.Config
	catalog *protocol.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "prism",
		Short: "PRISM speaker recognition protocols",
		Long: `prism builds the PRISM SRE10 protocols from a data directory holding
KEYS/<DB>.key and TRIALS/sre10.conditions/*, and prints or exports their
partitions and trial matrices.`,
		Version:           version.Get().String(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./prism.yml or ./config/prism.yml)")
	flags.StringVar(&a.envFile, "env-file", "", ".env file (default: ./.env.prism or ./.env)")
	flags.StringVar(&a.dataDir, "data-dir", "", "data directory, overrides data_dir")
	flags.StringVar(&a.logLevel, "log-level", "", "log level, overrides logging.level")

	root.AddCommand(
		newProtocolsCmd(a),
		newPartitionCmd(a),
		newTrialsCmd(a),
		newExportCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and registers the
// default protocols.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(&cfg.Logging)

	src, err := protocol.NewSource(cfg.DataFS(), cfg.Databases, cfg.Settings(), logger.Get(logger.ComponentProtocol))
	if err != nil {
		return err
	}
	catalog, err := protocol.NewDefaultCatalog(src)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.catalog = catalog
	logger.Debug("configuration loaded", logger.Fields(
		logger.FieldPath, cfg.DataDir,
		"databases", cfg.Databases,
		"environment", cfg.Environment,
	))
	return nil
}

// protocol builds the named protocol with the configured templates.
func (a *app) protocol(name string) (*protocol.Protocol, error) {
	return a.catalog.Create(protocol.Task, name, protocol.WithTemplates(a.cfg.Preprocess))
}
