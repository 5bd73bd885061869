package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these; callers should use [errors.Is].
var (
	// ErrOpeningDatabase is returned when the cache database cannot be
	// created, opened or pinged.
	ErrOpeningDatabase = errors.New("error opening cache database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a new
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a cached row fails.
	ErrScanningRow = errors.New("failed to scan cached row")

	// ErrScanningRows is returned when the row iterator reports an error
	// after the result set is exhausted.
	ErrScanningRows = errors.New("failed to iterate cached rows")
)

var (
	// ErrEncodingRecord is returned when a record cannot be serialised for
	// the cache.
	ErrEncodingRecord = errors.New("failed to encode cached record")

	// ErrDecodingRecord is returned when a cached payload is not a valid
	// record.
	ErrDecodingRecord = errors.New("failed to decode cached record")
)
