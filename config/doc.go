// Package config loads prism configuration.
//
// It uses Viper to read a YAML config file and environment variables, with
// optional .env files loaded through godotenv. Environment variables use the
// upper-cased service name as prefix and underscore-separated paths, e.g.
// PRISM_DATA_DIR or PRISM_DEBUG_TRAIN_LIMIT. Only keys of the target struct
// are bound; list values are comma-separated.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("prism.yml"))
//	if err != nil {
//	    return err
//	}
//	src, err := protocol.NewSource(cfg.DataFS(), cfg.Databases, cfg.Settings(), nil)
package config
