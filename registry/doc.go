/*
Package registry holds process-wide catalogs populated during initialization.

Operation Registry:
Every Redshift operation exposed by redshiftctl is registered once with its CLI
noun/verb, whether it paginates and its impact level:

	var opDeleteCluster = registry.RegisterOperation(registry.Operation{
	    Name:     "DeleteCluster",
	    Resource: "cluster",
	    Verb:     "delete",
	    Impact:   registry.ImpactHigh,
	})

Registering the same name twice panics.

Index Map Registry:
Associates Go types with DynamoDB key patterns used by the audit journal:

	registry.RegisterIndexMap[audit.Record](map[string]string{
	    "PK": "TARGET#{Target}",
	    "SK": "AUDIT#{CreatedAt}#{ID}",
	})

Both registries are thread-safe and should be populated in init() functions or
package-level variable initializers.
*/
package registry
