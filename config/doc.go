// Package config loads YAML device profiles for the ADIS16490 driver.
//
// A profile carries host-side settings that vary between rigs: serial
// bridge port parameters, timing overrides for marginal wiring, and the
// log level. Timing defaults are the datasheet values; a profile only
// needs the fields it changes.
//
//	bridge:
//	  port: /dev/ttyUSB0
//	  baud: 921600
//	timing:
//	  stall_us: 20
//	log_level: debug
package config
