/*
Package errors provides semantic error types for redshiftctl.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound            = errors.New("resource not found")
	    ErrAlreadyExists       = errors.New("resource already exists")
	    ErrInvalidInput        = errors.New("invalid input")
	    ErrInvalidState        = errors.New("invalid resource state")
	    ErrDeclined            = errors.New("operation declined")
	    ErrEndpointUnreachable = errors.New("service endpoint unreachable")
	    ErrNoIndexMap          = errors.New("no index map found for type")
	)

Remote errors returned by the AWS SDK are mapped with Classify:

	out, err := api.DeleteCluster(ctx, input)
	if err != nil {
	    return errors.Classify("DeleteCluster", "analytics", "us-east-1", err)
	}

Name resolution failures become *EndpointResolutionError with a message that
points at the configured region; smithy API error codes ending in NotFound,
NotExists or AlreadyExists map to the matching typed errors; everything else is
returned as *ServiceError with the AWS error code.
*/
package errors
