// Package config loads the optional settings file of the calibrate command.
//
// A settings file is written in HCL (.hcl) or YAML (.yaml, .yml). A directory
// may hold several of them; they are applied in lexical path order and later
// files override the values of earlier ones. Only logging is configurable.
//
// HCL files can read the process environment through the env variable:
//
//	log_level  = env.CALIBRATE_LOG_LEVEL
//	log_format = "json"
package config
