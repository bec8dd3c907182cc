package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Checklist errors
	ChecklistNotFoundError
	ChecklistReadError
	ChecklistHeaderError
	ChecklistEmptyError

	// Generate errors
	GenerateArtifactError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnknownEngineError
	DBCountError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Load errors
	LoadArtifactNotFoundError
	LoadStatementError
	LoadTransactionError
	LoadDialectError

	// CLI errors
	ReportFormatError
)
