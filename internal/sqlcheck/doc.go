// Package sqlcheck verifies that compiled statements are valid SQL by
// preparing them against an in-memory SQLite database.
//
// For every check a scratch table named after the root record type is
// created inside a transaction, with one untyped column per column the
// statement references. The statement is prepared, never executed, and
// the transaction is rolled back. The database therefore stays empty and
// checks do not see each other's tables.
//
// Statements must be compiled with the querysql.SQLite dialect; Checker
// does this itself for query builders.
package sqlcheck
