package main

import (
	"fmt"
	"strings"

	"github.com/pianoroll/midx/pkg/midx/filter"
	"github.com/spf13/viper"
)

// buildFilter creates a filter.Filter from the CLI flags.
func buildFilter() (*filter.Filter, error) {
	var opts []filter.Option

	// Limit
	limitVal := viper.GetInt("limit")
	if limitVal > 0 {
		opts = append(opts, filter.WithLimit(limitVal))
	}

	// Extensions (normalization happens in the option)
	extStr := viper.GetString("ext")
	if extStr != "" {
		opts = append(opts, filter.WithExtensions(parseCommaSeparated(extStr)...))
	}

	// Include patterns
	includeStr := viper.GetString("include")
	if includeStr != "" {
		opts = append(opts, filter.WithInclude(parseCommaSeparated(includeStr)...))
	}

	// Exclude patterns
	excludeStr := viper.GetString("exclude")
	if excludeStr != "" {
		opts = append(opts, filter.WithExclude(parseCommaSeparated(excludeStr)...))
	}

	// Folder
	folderStr := viper.GetString("folder")
	if folderStr != "" {
		opts = append(opts, filter.WithFolder(folderStr))
	}

	// Sort by
	sortByStr := viper.GetString("sort")
	if sortByStr == "" {
		sortByStr = "name"
	}
	sortField, err := filter.ParseSortField(sortByStr)
	if err != nil {
		return nil, fmt.Errorf("invalid sort field %q: %w", sortByStr, err)
	}
	opts = append(opts, filter.WithSortBy(sortField))

	// The --reverse flag reverses the natural order
	// For size, descending (largest first) is the natural order
	// For name and path, ascending is the natural order
	reverseVal := viper.GetBool("reverse")
	descending := sortField == filter.SortSize
	if reverseVal {
		descending = !descending
	}
	opts = append(opts, filter.WithSortDescending(descending))

	return filter.New(opts...), nil
}

// parseCommaSeparated splits a comma-separated string and trims whitespace.
func parseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
