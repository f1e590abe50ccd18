// Package config manages user-level settings stored at ~/.gen-features/config.yaml.
// Settings may also come from GENFEATURES_* environment variables. The file is
// checked against an embedded JSON schema; invalid values are reported and the
// defaults are used instead.
package config
