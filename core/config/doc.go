// Package config provides configuration management for the asset registry.
//
// It uses Viper to read environment variables, optionally overloaded from a
// .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
//   - Project: project folder, source (local or storage), walk and load limits
//   - Serializer: texture downscaling and embedded mesh registration
//   - Watch: debounce of file-system notifications
//   - Server: HTTP port, API key, swagger toggle
//   - Storage: S3/MinIO credentials and bucket for the storage source
//   - Log: logging level and format
//   - Database: registry persistence (sqlite or mysql)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.Root)
package config
