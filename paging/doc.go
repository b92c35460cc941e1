/*
Package paging implements the Marker/MaxRecords listing loop shared by every
Redshift Describe* operation.

A Paginator wraps a FetchFunc that performs one remote call:

	p := paging.New(func(ctx context.Context, marker *string, maxRecords *int32) (paging.Page[types.Cluster], error) {
	    out, err := api.DescribeClusters(ctx, &redshift.DescribeClustersInput{
	        Marker:     marker,
	        MaxRecords: maxRecords,
	    })
	    if err != nil {
	        return paging.Page[types.Cluster]{}, err
	    }
	    return paging.Page[types.Cluster]{Items: out.Clusters, NextToken: out.Marker}, nil
	}, paging.WithMaxItems(120))

	clusters, err := p.All(ctx)

Page sizing:
Without a cap every call requests PageSize (default 100). With WithMaxItems the
request shrinks to the remaining cap, so a cap of 120 issues calls of 100 and 20.
Iteration ends on an empty cursor, when the cap is reached, or after one call
in manual mode (WithNoAutoIteration), where NextToken returns the cursor to
resume from.

Partial results:
Under the default KeepPartialOnCap policy a failure on a later page, when a cap
was set, ends iteration without an error; the failure is logged and recorded
in Progress.Errors. First-page failures always surface. FailFast surfaces all
failures.

Calls are issued strictly one after another. The context is checked between
pages. Stream delivers the same items over a channel with per-item metadata.
*/
package paging
