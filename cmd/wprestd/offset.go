// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/diffeo/go-wprest/wordpress"
)

const timeZoneOption = "time_zone"

// utcOffset returns the configured offset, or asks the blog for its
// time_zone option (hours east of UTC, possibly fractional).  A blog
// without the option is on UTC.
func utcOffset(cfg Config, blog wordpress.Blog) (time.Duration, error) {
	if cfg.UTCOffset != nil {
		return time.Duration(*cfg.UTCOffset) * time.Second, nil
	}
	options, err := blog.Options(timeZoneOption)
	if err != nil {
		return 0, err
	}
	value := options[timeZoneOption].Value
	if value == "" {
		return 0, nil
	}
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %v option %q: %w", timeZoneOption, value, err)
	}
	return time.Duration(hours * float64(time.Hour)), nil
}
