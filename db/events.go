package db

import "github.com/zoobzio/capitan"

// Statement execution signals.
var (
	// StatementStarted is emitted when a statement begins execution.
	// Fields: StatementIDKey, KindKey, SQLKey.
	StatementStarted = capitan.NewSignal("db.statement.started", "Statement execution started")

	// StatementCompleted is emitted when a statement completes successfully.
	// Fields: StatementIDKey, KindKey, DurationMsKey, and RowsAffectedKey,
	// RowsReturnedKey or LastInsertIDKey.
	StatementCompleted = capitan.NewSignal("db.statement.completed", "Statement completed successfully")

	// StatementFailed is emitted when a statement fails.
	// Fields: StatementIDKey, KindKey, DurationMsKey, ErrorKey.
	StatementFailed = capitan.NewSignal("db.statement.failed", "Statement failed with error")
)

// Event field keys.
var (
	// StatementIDKey correlates the events of one execution.
	StatementIDKey = capitan.NewStringKey("statement_id")

	// KindKey is the statement kind (SELECT, INSERT, UPDATE, DELETE).
	KindKey = capitan.NewStringKey("kind")

	// SQLKey contains the bound SQL sent to the driver.
	SQLKey = capitan.NewStringKey("sql")

	// DurationMsKey contains the execution duration in milliseconds.
	DurationMsKey = capitan.NewInt64Key("duration_ms")

	// RowsAffectedKey contains the number of rows affected by UPDATE/DELETE.
	RowsAffectedKey = capitan.NewInt64Key("rows_affected")

	// RowsReturnedKey contains the number of rows returned by SELECT.
	RowsReturnedKey = capitan.NewIntKey("rows_returned")

	// LastInsertIDKey contains the id generated by INSERT.
	LastInsertIDKey = capitan.NewInt64Key("last_insert_id")

	// ErrorKey contains the error message when a statement fails.
	ErrorKey = capitan.NewStringKey("error")
)
