// Package settings loads the optional HCL settings file. Every attribute is
// optional and any expression may refer to the process environment through
// the env object, for example:
//
//	output    = "${env.HOME}/ConvertionResults.txt"
//	log_level = "debug"
//	workers   = 8
//	pad_hex   = true
package settings
