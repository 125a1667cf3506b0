package catalog

import "errors"

var (
	ErrFailedToReadDir     = errors.New("catalog.failed_to_read_dir")
	ErrFailedToReadFile    = errors.New("catalog.failed_to_read_file")
	ErrFailedToParseJSON   = errors.New("catalog.failed_to_parse_json")
	ErrFailedToParseYAML   = errors.New("catalog.failed_to_parse_yaml")
	ErrFailedToMarshalJSON = errors.New("catalog.failed_to_marshal_json")
	ErrInvalidTableValue   = errors.New("catalog.invalid_table_value")
	ErrNoTables            = errors.New("catalog.no_tables")
	ErrDefaultTableMissing = errors.New("catalog.default_table_missing")
	ErrLoadingCancelled    = errors.New("catalog.loading_cancelled")
)
