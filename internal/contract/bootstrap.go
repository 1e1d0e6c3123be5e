package contract

import (
	"fmt"
	"os"

	"github.com/arissops/passclock/schema"
)

// DefaultScheduleFileText is the schedule file written by the init command
// when no schedule exists yet. The sample AOS/LOS match the built-in defaults
// so a freshly initialized station shows stopped timers rather than a bogus
// countdown.
const DefaultScheduleFileText = `# passclock schedule file
#
# Lines starting with # are comments and are ignored.
# Every other line is KEY,VALUE with no spaces around the comma.
#
# STZ is the school time zone offset from UTC, in hours.
# Fractional offsets like -2.5 and 5.5 are allowed.
#
# AOS and LOS are in station local time, format YYYY-MM-DD HH:mm:ss.
# AOS must come before LOS.
STZ,-5
AOS,` + schema.DefaultAOSValue + `
LOS,` + schema.DefaultLOSValue + `
`

// DefaultReadmeText is the companion readme written next to the schedule file.
const DefaultReadmeText = `passclock - ISS pass countdown clock
====================================

Quick start
-----------
1. Edit ` + DefaultSchedulePath + ` with the AOS and LOS times for your
   scheduled contact, in station local time.
2. Set STZ to the school's offset from UTC so the display can show the
   remote classroom's wall clock (0 shows UTC).
3. Run "passclock run" before the pass. The AOS timer turns yellow six
   minutes out and red in the final minute.

Commands
--------
  run       full-screen countdown display
  predicts  print the schedule in local and UTC time
  check     validate the schedule file and exit non-zero on problems
  init      write this readme and a sample schedule file
  log       inspect recorded pass events

The display refreshes continuously. Press Ctrl-C to exit.
`

// WriteDefaultScheduleFile writes the sample schedule to path. It refuses to
// overwrite an existing file so a live schedule is never clobbered.
func WriteDefaultScheduleFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("schedule file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(DefaultScheduleFileText), 0o644); err != nil {
		return fmt.Errorf("failed to write schedule file: %w", err)
	}
	return nil
}

// WriteReadmeFile writes the readme to path, overwriting any previous copy.
func WriteReadmeFile(path string) error {
	if err := os.WriteFile(path, []byte(DefaultReadmeText), 0o644); err != nil {
		return fmt.Errorf("failed to write readme file: %w", err)
	}
	return nil
}
