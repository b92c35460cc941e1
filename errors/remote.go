/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aws/smithy-go"
)

// ServiceError wraps a failure returned by the Redshift service that has no
// more specific classification.
type ServiceError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *ServiceError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %s", e.Operation, e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// EndpointResolutionError replaces the raw DNS failure the transport reports
// when the regional endpoint host cannot be resolved.
type EndpointResolutionError struct {
	Operation string
	Region    string
	Host      string
	Err       error
}

func (e *EndpointResolutionError) Error() string {
	region := e.Region
	if region == "" {
		region = "<unset>"
	}
	return fmt.Sprintf("%s: name resolution failure attempting to reach service in region %q "+
		"(as supplied with --region or from the configured default): host %q could not be resolved",
		e.Operation, region, e.Host)
}

func (e *EndpointResolutionError) Unwrap() error {
	return e.Err
}

func (e *EndpointResolutionError) Is(target error) bool {
	return target == ErrEndpointUnreachable
}

// Classify turns an error returned by the SDK for the named operation into one
// of the package's semantic errors. target is the resource identifier the call
// addressed and region the configured AWS region; both only feed messages.
// A nil error stays nil.
func Classify(operation, target, region string, err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &EndpointResolutionError{
			Operation: operation,
			Region:    region,
			Host:      dnsErr.Name,
			Err:       err,
		}
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return &ServiceError{Operation: operation, Err: err}
	}

	code := apiErr.ErrorCode()
	resource := resourceFromCode(code)
	switch {
	case isNotFoundCode(code):
		return fmt.Errorf("%s: %w", operation,
			&NotFoundError{Type: resource, Key: target, Message: apiErr.ErrorMessage(), Err: err})
	case strings.Contains(code, "AlreadyExist"):
		return fmt.Errorf("%s: %w", operation,
			&AlreadyExistsError{Type: resource, Key: target, Message: apiErr.ErrorMessage(), Err: err})
	case strings.HasPrefix(code, "Invalid") && strings.Contains(code, "State"):
		return &InvalidStateError{Operation: operation, State: apiErr.ErrorMessage(), Err: err}
	}

	return &ServiceError{
		Operation: operation,
		Code:      code,
		Message:   apiErr.ErrorMessage(),
		Err:       err,
	}
}

func isNotFoundCode(code string) bool {
	code = strings.TrimSuffix(code, "Fault")
	return strings.HasSuffix(code, "NotFound") || strings.HasSuffix(code, "NotExists")
}

// resourceFromCode derives the resource name from codes like
// "ClusterNotFound", "ClusterSnapshotAlreadyExists" or "SubscriptionAlreadyExist".
func resourceFromCode(code string) string {
	for _, suffix := range []string{
		"NotFoundFault", "NotFound",
		"NotExistsFault", "NotExists",
		"AlreadyExistsFault", "AlreadyExists",
		"AlreadyExistFault", "AlreadyExist",
	} {
		if strings.HasSuffix(code, suffix) {
			if name := strings.TrimSuffix(code, suffix); name != "" {
				return name
			}
		}
	}
	return "resource"
}
