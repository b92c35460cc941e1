/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package audit records every mutating Redshift operation redshiftctl runs:
// who was targeted, at which impact level and whether it succeeded, failed or
// was declined at the confirmation prompt.
//
// Two journals are provided. MemoryJournal keeps records in process and is
// used by tests and dry runs; the ddb subpackage stores them in a DynamoDB
// single table keyed by target:
//
//	PK = TARGET#{Target}
//	SK = AUDIT#{Timestamp}#{ID}
//
// Listing goes through paging.Paginator in both cases, so the CLI can apply
// the same --max-items and --starting-token flags it uses for Redshift
// listings.
package audit
