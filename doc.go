/*
Package redshiftctl exposes the Amazon Redshift control-plane API as typed,
validated operations with uniform paging, confirmation and error handling.

Every operation is a Service method taking a parameter struct that mirrors the
SDK request. Listing operations return a paging.Paginator that walks the
Marker/MaxRecords protocol; mutating operations validate their parameters,
pass through an optional confirmation gate, issue exactly one SDK call and
optionally record the outcome in an audit journal.

Key Features:
  - Paginated listing with a total item cap, manual paging and streaming
  - Confirmation gate driven by per-operation impact levels
  - Typed selector sets for projecting results
  - Semantic errors, including a readable message for unresolvable endpoints
  - In-memory client for testing (client/mock)

Basic Usage:

	api, _ := client.New(ctx, client.Config{Region: "us-east-1"})
	svc := redshiftctl.New(api, redshiftctl.WithRegion("us-east-1"))

	// List at most 50 clusters
	p, _ := svc.DescribeClusters(redshiftctl.DescribeClustersParams{}, paging.WithMaxItems(50))
	clusters, err := p.All(ctx)

	// Pause a cluster without prompting
	cluster, err := svc.PauseCluster(ctx, redshiftctl.ClusterParams{ClusterIdentifier: "analytics"},
		redshiftctl.WithForce())

The redshiftctl command in cmd/redshiftctl wraps the Service as verb-noun
subcommands.
*/
package redshiftctl
