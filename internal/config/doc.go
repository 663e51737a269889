// Package config handles loading and validation of tajweed configuration.
//
// Configuration is read from ~/.config/tajweed/config.toml with environment
// variable overrides. Every setting has a default, so the file is optional and
// a bare `tajweed` run downloads into ./tajweed_data with a 50ms pause.
//
// # Configuration Sources (highest priority first)
//
//   - Command line flags (applied by the CLI)
//   - TAJWEED_OUTPUT_DIR env var: cache root
//   - TAJWEED_BASE_URL env var: API endpoint
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - output_dir: cache root (default: "tajweed_data", relative to the working directory)
//   - base_url: uthmani_tajweed endpoint of the quran.com v4 API
//   - timeout: per-request timeout (default: "15s")
//   - delay: pause after each successful fetch (default: "50ms")
//   - user_agent: User-Agent header sent with every request
//
// # Theme Configuration
//
//	[theme]
//	name = "nord"   # default, dracula, nord, none
package config
