// Package core has the schedule loader and the pass timer engine.
package core

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arissops/passclock/schema"
)

// Load parses schedule file lines into a PassSchedule.
//
// Lines beginning with '#' are comments. The rest are KEY,VALUE pairs with
// STZ, AOS and LOS recognized; unknown keys are retained in Extras but unused.
// AOS/LOS values are stated in the ground station's local civil time and must
// match schema.ConfigTimeLayout exactly, so they are resolved to instants with
// the provided location — the system local zone in production, a fixed zone in
// tests. The school offset plays no part in this conversion.
//
// Load never fails outright: every bad field is replaced by its documented
// default and reported as a tagged ScheduleError, and the returned schedule is
// always usable. Errors come back in a fixed order regardless of line layout:
// AOS first, then LOS, then the ordering check.
func Load(lines []string, loc *time.Location) (*schema.PassSchedule, []schema.ScheduleError) {
	if loc == nil {
		loc = time.Local
	}

	values := map[string]string{}
	extras := map[string]string{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ",")
		if !ok {
			// Not a KEY,VALUE pair; skip rather than abort.
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case schema.KeySTZ, schema.KeyAOS, schema.KeyLOS:
			values[key] = value
		default:
			extras[key] = value
		}
	}

	var errs []schema.ScheduleError

	offset := schema.DefaultSchoolOffset
	if raw, ok := values[schema.KeySTZ]; ok {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			offset = parsed
		}
	}

	aos, aosErr := parseInstant(values[schema.KeyAOS], schema.DefaultAOSValue, loc)
	if aosErr != nil {
		errs = append(errs, schema.ScheduleError{Kind: schema.InvalidAOSError, Detail: values[schema.KeyAOS]})
	}
	los, losErr := parseInstant(values[schema.KeyLOS], schema.DefaultLOSValue, loc)
	if losErr != nil {
		errs = append(errs, schema.ScheduleError{Kind: schema.InvalidLOSError, Detail: values[schema.KeyLOS]})
	}

	// Ordering check runs on the resolved instants, whether parsed or
	// defaulted. Violation replaces the whole pair, not just one side.
	if !aos.Before(los) {
		errs = append(errs, schema.ScheduleError{Kind: schema.LOSBeforeAOSError})
		aos = mustParseInstant(schema.DefaultAOSValue, loc)
		los = mustParseInstant(schema.DefaultLOSValue, loc)
	}

	return &schema.PassSchedule{
		SchoolOffsetHours: offset,
		AOS:               aos,
		LOS:               los,
		Extras:            extras,
	}, errs
}

// LoadFile reads a schedule file and parses it with Load.
func LoadFile(path string, loc *time.Location) (*schema.PassSchedule, []schema.ScheduleError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	sched, errs := Load(lines, loc)
	return sched, errs, nil
}

// parseInstant resolves a raw timestamp value against the exact fixed-width
// layout, falling back to the documented default on any deviation: missing
// value, wrong width, non-numeric component, or impossible calendar date.
func parseInstant(raw, fallback string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(schema.ConfigTimeLayout, raw, loc)
	if err != nil {
		return mustParseInstant(fallback, loc), err
	}
	// ParseInLocation tolerates a fractional second the layout never asked
	// for. The format is exact, so anything that does not round-trip is
	// rejected too.
	if t.Format(schema.ConfigTimeLayout) != raw {
		return mustParseInstant(fallback, loc),
			fmt.Errorf("timestamp %q does not match format %q", raw, schema.ConfigTimeLayout)
	}
	return t, nil
}

// mustParseInstant parses one of the documented default timestamps. The
// defaults are compile-time constants known to match the layout.
func mustParseInstant(value string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(schema.ConfigTimeLayout, value, loc)
	if err != nil {
		panic("passclock: default timestamp does not match layout: " + value)
	}
	return t
}
