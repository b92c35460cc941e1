/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
)

// optString maps "" to nil so unset parameters are omitted from requests.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// toTags converts a key/value map into SDK tags ordered by key.
func toTags(m map[string]string) []types.Tag {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make([]types.Tag, len(keys))
	for i, k := range keys {
		tags[i] = types.Tag{Key: aws.String(k), Value: aws.String(m[k])}
	}
	return tags
}

// toParameters converts name=value pairs into parameter group settings
// ordered by name. An empty value only names the parameter.
func toParameters(m map[string]string) []types.Parameter {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	params := make([]types.Parameter, len(names))
	for i, name := range names {
		params[i] = types.Parameter{ParameterName: aws.String(name), ParameterValue: optString(m[name])}
	}
	return params
}

func namedParameters(names []string) []types.Parameter {
	if len(names) == 0 {
		return nil
	}
	params := make([]types.Parameter, len(names))
	for i, name := range names {
		params[i] = types.Parameter{ParameterName: aws.String(name)}
	}
	return params
}
