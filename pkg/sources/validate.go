package sources

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Validate checks the configuration for errors and normalizes formats.
func (c *SourcesConfig) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources specified in configuration")
	}

	seen := make(map[int]bool)
	for i := range c.Sources {
		src := &c.Sources[i]
		warnings, err := src.Validate()
		if err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		if seen[src.ID] {
			return fmt.Errorf("source %d: duplicate id %d", i+1, src.ID)
		}
		seen[src.ID] = true
		c.Warnings = append(c.Warnings, warnings...)
	}

	return nil
}

// Validate checks a single source configuration for data structure
// validity. Glob matching is deferred to runtime (I/O layer).
func (s *SourceConfig) Validate() ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	if s.ID <= 0 {
		return nil, fmt.Errorf("id must be a positive integer")
	}

	s.Format = Format(strings.ToLower(strings.TrimSpace(string(s.Format))))
	if !slices.Contains(Formats(), s.Format) {
		return nil, fmt.Errorf(
			"invalid format %q: must be one of %v", s.Format, Formats(),
		)
	}

	s.Path = strings.TrimSpace(s.Path)
	if s.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if s.Title == "" {
		warnings = append(warnings, ValidationWarning{
			SourceID:   s.ID,
			Field:      "title",
			Message:    "title is empty",
			Suggestion: "Add 'title' to make import logs easier to read",
		})
	}

	return warnings, nil
}

// ExpandHome replaces a leading ~ in path with homeDir.
func ExpandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Filter selects sources by a filter string. Supported formats:
//   - "": Returns all sources (no filtering)
//   - "1": Returns source with ID 1
//   - "1,3": Returns sources 1 and 3
//   - "2-5": Returns sources with IDs from 2 to 5 (inclusive)
//   - "-3": Returns sources with IDs from 1 to 3
//   - "2-": Returns sources with IDs from 2 to the largest ID
//
// Warnings name explicitly requested IDs that are missing and ranges
// that matched nothing.
func Filter(
	sources []SourceConfig,
	filter string,
) ([]SourceConfig, []string, error) {
	filter = strings.TrimSpace(filter)

	if filter == "" {
		return sources, nil, nil
	}

	ids, warnings, err := FilterIDs(sources, filter)
	if err != nil {
		return nil, warnings, err
	}
	return Select(sources, ids), warnings, nil
}

// FilterIDs resolves a filter string into the IDs of matching sources.
func FilterIDs(
	sources []SourceConfig,
	filter string,
) ([]int, []string, error) {
	requestedIDs := make(map[int]bool)
	explicitIDs := make(map[int]bool)
	var warnings []string

	for _, item := range strings.Split(filter, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if strings.Contains(item, "-") {
			start, end, err := parseRange(item, sources)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse range '%s': %w", item, err)
			}

			rangeHasMatches := false
			for _, src := range sources {
				if src.ID >= start && src.ID <= end {
					requestedIDs[src.ID] = true
					rangeHasMatches = true
				}
			}
			if !rangeHasMatches {
				warnings = append(warnings, fmt.Sprintf("range '%s' matched no sources", item))
			}
			continue
		}

		id, err := strconv.Atoi(item)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid source ID '%s': must be a number or range", item)
		}
		requestedIDs[id] = true
		explicitIDs[id] = true
	}

	var ids []int
	for _, src := range sources {
		if requestedIDs[src.ID] {
			ids = append(ids, src.ID)
		}
	}

	for id := range explicitIDs {
		if !slices.Contains(ids, id) {
			warnings = append(warnings, fmt.Sprintf("source ID %d not found in configuration", id))
		}
	}
	slices.Sort(warnings)

	if len(ids) == 0 {
		return nil, warnings, fmt.Errorf("no sources matched filter '%s'", filter)
	}
	return ids, warnings, nil
}

// Select returns sources with the given IDs in configuration order.
// Empty ids select everything.
func Select(sources []SourceConfig, ids []int) []SourceConfig {
	if len(ids) == 0 {
		return sources
	}
	var res []SourceConfig
	for _, src := range sources {
		if slices.Contains(ids, src.ID) {
			res = append(res, src)
		}
	}
	return res
}

// parseRange parses a range string like "2-5", "-3", or "2-".
func parseRange(rangeStr string, sources []SourceConfig) (int, int, error) {
	parts := strings.Split(rangeStr, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid format: expected 'X-Y', '-Y', or 'X-'")
	}

	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	var start, end int
	var err error

	switch {
	case startStr == "":
		start = 1
		if end, err = strconv.Atoi(endStr); err != nil {
			return 0, 0, fmt.Errorf("invalid end value: %w", err)
		}
	case endStr == "":
		if start, err = strconv.Atoi(startStr); err != nil {
			return 0, 0, fmt.Errorf("invalid start value: %w", err)
		}
		for _, src := range sources {
			end = max(end, src.ID)
		}
		if end == 0 {
			return 0, 0, fmt.Errorf("no sources available to determine end of range")
		}
	default:
		if start, err = strconv.Atoi(startStr); err != nil {
			return 0, 0, fmt.Errorf("invalid start value: %w", err)
		}
		if end, err = strconv.Atoi(endStr); err != nil {
			return 0, 0, fmt.Errorf("invalid end value: %w", err)
		}
	}

	if start > end {
		return 0, 0, fmt.Errorf("start (%d) must be <= end (%d)", start, end)
	}
	return start, end, nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
