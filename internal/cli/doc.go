// Package cli provides the `uuidv7` command-line tool.
//
// Usage
//
//	uuidv7 gen -n 5
//	uuidv7 gen -n 10000 --stats      # log generator event counts on exit
//	uuidv7 parse 0190b6f5-3c3a-7000-8000-0e02b2c3d479
//	uuidv7 field 0190b6f5-3c3a-7000-8000-0e02b2c3d479 --offset 6
//	cat ids.txt | uuidv7 sort
//
// Logs go to stderr through logrus. The level and format come from
// --log-level/--log-format, falling back to UUIDV7_LOG_LEVEL and
// UUIDV7_LOG_FORMAT.
package cli
