package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteTemplateError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	DBConnectionError
	DBUnknownDriverError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBDropTableError
	DBEmptyDatabaseError
	DBQueryError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Sources errors
	SourcesConfigError
	SourcesValidationError
	SourcesNoFilesError

	// Import errors
	ImportReadError
	ImportFormatError
	ImportUnknownBookError
	ImportInsertError
	ImportCacheError
	ImportAllSourcesFailedError
	ImportNoSourcesError
	ImportCancelledError

	// Lookup errors
	InvalidPassageError
	PassageNotFoundError
	UnknownBookError
)
