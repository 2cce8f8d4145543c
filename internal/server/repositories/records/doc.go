// Package records persists registry records.
//
// # Backends
//
// Two implementations satisfy Repository and are chosen once at startup:
//
//   - BlobRepository: the whole list is one JSON array stored under a fixed
//     key in a blob.Keeper and rewritten on every mutation. New records are
//     prepended, so the stored order is already newest first.
//   - PostgresRepository: one row per record in the "users" table, listed by
//     creation time descending.
//
// Records are never updated in place; the only mutations are Add, Remove
// and Clear.
package records
